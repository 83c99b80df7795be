package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinAccessTypes(t *testing.T) {
	assert.Equal(t, "GitHub, AWS", JoinAccessTypes([]string{"GitHub", "AWS"}))
	assert.Equal(t, "Figma", JoinAccessTypes([]string{"Figma"}))
	assert.Equal(t, "", JoinAccessTypes(nil))
}

func TestSplitAccessTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "joined pair", raw: "GitHub, AWS", want: []string{"GitHub", "AWS"}},
		{name: "no space after comma", raw: "GitHub,AWS", want: []string{"GitHub", "AWS"}},
		{name: "extra whitespace", raw: " GitHub ,  AWS ", want: []string{"GitHub", "AWS"}},
		{name: "empty segments dropped", raw: "GitHub,,AWS,", want: []string{"GitHub", "AWS"}},
		{name: "single", raw: "Grafana", want: []string{"Grafana"}},
		{name: "empty string", raw: "", want: nil},
		{name: "only whitespace", raw: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAccessTypes(tt.raw))
		})
	}
}

func TestAccessTypesRoundTrip(t *testing.T) {
	// Selection order survives a write-then-read cycle.
	selection := []string{"Confluence", "GitHub", "JFROG"}
	r := AccessRequest{AccessType: JoinAccessTypes(selection)}
	assert.Equal(t, selection, r.AccessTypes())
}
