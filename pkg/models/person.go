package models

// Person is a team member record owned by the personnel API.
type Person struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Area       string `json:"area,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
	Status     string `json:"status"`
	// Request is the human-readable request label; the server usually omits
	// it for person records and the dashboard substitutes a default.
	Request string `json:"request,omitempty"`
}

// CreatePersonInput is the create-user payload. The legacy endpoint spells
// the role field "rol".
type CreatePersonInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Area  string `json:"area"`
	Role  string `json:"rol"`
}

// UpdatePersonInput is the update-user payload. The endpoint takes both
// department and area; the original client sent the same value for both.
type UpdatePersonInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Area       string `json:"area"`
}

// ApprovedOnly filters a person collection down to members whose status
// passes the approved filter.
func ApprovedOnly(people []Person) []Person {
	approved := make([]Person, 0, len(people))
	for _, p := range people {
		if IsApproved(p.Status) {
			approved = append(approved, p)
		}
	}
	return approved
}

// FindPersonByID scans a person collection for a matching id. The API has no
// get-user-by-id endpoint, so edit flows fetch the full list and scan.
func FindPersonByID(people []Person, id ID) (Person, bool) {
	for _, p := range people {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}
