package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StatusClass
	}{
		{name: "wire pending", raw: "pendiente", want: StatusPending},
		{name: "wire approved", raw: "aprobado", want: StatusApproved},
		{name: "wire rejected", raw: "rechazado", want: StatusRejected},
		{name: "english pending", raw: "pending", want: StatusPending},
		{name: "english approved", raw: "approved", want: StatusApproved},
		{name: "english rejected", raw: "rejected", want: StatusRejected},
		{name: "mixed case", raw: "Pendiente", want: StatusPending},
		{name: "upper case", raw: "APROBADO", want: StatusApproved},
		{name: "trailing space", raw: "Aprobado ", want: StatusApproved},
		{name: "surrounding whitespace", raw: "  rechazado\t", want: StatusRejected},
		{name: "unknown value", raw: "en revisión", want: StatusOther},
		{name: "empty", raw: "", want: StatusOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.raw))
		})
	}
}

func TestIsApproved(t *testing.T) {
	assert.True(t, IsApproved("aprobado"))
	assert.True(t, IsApproved(" Approved"))
	assert.False(t, IsApproved("pendiente"))
	assert.False(t, IsApproved(""))
}
