package models

import "strings"

// AccessRequest is a request for a set of named system accesses for a person.
// AccessType is stored server-side as a comma-joined string.
type AccessRequest struct {
	ID         ID     `json:"id"`
	UserID     ID     `json:"user_id"`
	UserName   string `json:"user_name"`
	AccessType string `json:"access_type"`
	UserType   string `json:"user_type,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// AccessTypes splits the stored access-type string back into the list the
// multi-select works with. Entries are trimmed; empty segments are dropped.
func (r AccessRequest) AccessTypes() []string {
	return SplitAccessTypes(r.AccessType)
}

// JoinAccessTypes serializes a selection back to the wire format: a
// comma-plus-space-joined string of option labels.
func JoinAccessTypes(types []string) string {
	return strings.Join(types, ", ")
}

// SplitAccessTypes parses a comma-joined access-type string into a list.
func SplitAccessTypes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// CreateAccessRequestInput is the create-access-request payload.
type CreateAccessRequestInput struct {
	UserID     ID     `json:"user_id"`
	AccessType string `json:"access_type"`
}

// UpdateAccessRequestInput is the update-access-request payload.
type UpdateAccessRequestInput struct {
	UserID     ID     `json:"user_id"`
	UserType   string `json:"user_type"`
	AccessType string `json:"access_type"`
}
