package models

// ComputerAssignment links a person to a piece of equipment by serial number.
// Several fields are optional on the wire; the dashboard substitutes
// placeholders for missing ones.
type ComputerAssignment struct {
	ID             ID     `json:"id"`
	UserID         ID     `json:"user_id"`
	UserName       string `json:"user_name,omitempty"`
	UserEmail      string `json:"user_email,omitempty"`
	ComputerSerial string `json:"computer_serial,omitempty"`
	Model          string `json:"model,omitempty"`
	Status         string `json:"status,omitempty"`
	AssignedAt     string `json:"assigned_at,omitempty"`
}

// Computer is an entry from the available-computers listing.
type Computer struct {
	ID           ID     `json:"id"`
	SerialNumber string `json:"serial_number"`
	Model        string `json:"model,omitempty"`
	Status       string `json:"status,omitempty"`
}

// CreateAssignmentInput is the create-assignment payload.
type CreateAssignmentInput struct {
	UserID       ID     `json:"user_id"`
	SerialNumber string `json:"serial_number"`
	AssignedAt   string `json:"assigned_at,omitempty"`
}

// UpdateAssignmentInput is the update-assignment payload. The update endpoint
// spells the serial field differently from create.
type UpdateAssignmentInput struct {
	UserID         ID     `json:"user_id"`
	ComputerSerial string `json:"computer_serial_number"`
	AssignedAt     string `json:"assigned_at"`
}
