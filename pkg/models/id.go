package models

import (
	"encoding/json"
)

// ID is a record identifier as served by the personnel API, which is not
// consistent about emitting strings vs. numbers. A JSON null decodes to the
// zero value.
type ID string

// UnmarshalJSON accepts a string, a number, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// IsZero reports whether the identifier is missing (null or absent upstream).
func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}
