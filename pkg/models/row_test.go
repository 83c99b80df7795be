package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowFromPerson(t *testing.T) {
	row := RowFromPerson(Person{ID: "1", Name: "Ana", Status: "aprobado"})

	assert.Equal(t, KindPersonCreation, row.Kind)
	assert.Equal(t, "Ana", row.PersonLabel)
	assert.Equal(t, LabelPersonCreation, row.RequestLabel)
	assert.Equal(t, StatusApproved, row.StatusClass())
}

func TestRowFromPersonKeepsServerRequestLabel(t *testing.T) {
	row := RowFromPerson(Person{ID: "1", Name: "Ana", Request: "alta urgente", Status: "pendiente"})
	assert.Equal(t, "alta urgente", row.RequestLabel)
}

func TestRowFromAccessRequest(t *testing.T) {
	row := RowFromAccessRequest(AccessRequest{
		ID:         "9",
		UserName:   "Luis",
		AccessType: "GitHub, AWS",
		Status:     "pendiente",
	})

	assert.Equal(t, KindAccessRequest, row.Kind)
	assert.Equal(t, "Luis", row.PersonLabel)
	assert.Equal(t, LabelAccessRequest+" (GitHub, AWS)", row.RequestLabel)
	assert.Equal(t, StatusPending, row.StatusClass())
}

func TestRowFromAssignment(t *testing.T) {
	row := RowFromAssignment(ComputerAssignment{
		ID:             "3",
		UserName:       "Marta",
		ComputerSerial: "SN-100",
		Status:         "aprobado",
	})

	assert.Equal(t, KindAssignment, row.Kind)
	assert.Equal(t, "Marta", row.PersonLabel)
	assert.Equal(t, LabelAssignment+" (Serial: SN-100)", row.RequestLabel)
	assert.Equal(t, "aprobado", row.Status)
}

func TestRowFromAssignmentPlaceholders(t *testing.T) {
	row := RowFromAssignment(ComputerAssignment{ID: "4"})

	assert.Equal(t, UnknownPersonLabel, row.PersonLabel)
	assert.Equal(t, LabelAssignment+" ("+MissingSerialDetails+")", row.RequestLabel)
	assert.Equal(t, WireStatusPending, row.Status)
	assert.Equal(t, StatusPending, row.StatusClass())
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, LabelPersonCreation, KindPersonCreation.KindLabel())
	assert.Equal(t, LabelAccessRequest, KindAccessRequest.KindLabel())
	assert.Equal(t, LabelAssignment, KindAssignment.KindLabel())
}
