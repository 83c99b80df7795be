package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApprovedOnly(t *testing.T) {
	people := []Person{
		{ID: "1", Name: "Ana", Status: "aprobado"},
		{ID: "2", Name: "Luis", Status: "pendiente"},
		{ID: "3", Name: "Marta", Status: "Approved"},
		{ID: "4", Name: "Pedro", Status: "rechazado"},
	}

	approved := ApprovedOnly(people)

	assert.Len(t, approved, 2)
	assert.Equal(t, "Ana", approved[0].Name)
	assert.Equal(t, "Marta", approved[1].Name)
}

func TestFindPersonByID(t *testing.T) {
	people := []Person{
		{ID: "1", Name: "Ana"},
		{ID: "2", Name: "Luis"},
	}

	p, ok := FindPersonByID(people, "2")
	assert.True(t, ok)
	assert.Equal(t, "Luis", p.Name)

	_, ok = FindPersonByID(people, "99")
	assert.False(t, ok)
}
