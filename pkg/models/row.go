package models

import "fmt"

// RowKind tags a dashboard row with its originating collection so edit and
// delete actions can be routed to the right endpoint.
type RowKind string

const (
	KindPersonCreation RowKind = "person-creation"
	KindAccessRequest  RowKind = "access-request"
	KindAssignment     RowKind = "computer-assignment"
)

// Labels the original product attached to rows whose server record carries no
// request label of its own. The backend is Spanish-facing; these are wire-level
// product strings, not UI chrome.
const (
	LabelPersonCreation = "creacion de usuario"
	LabelAccessRequest  = "solicitud de acceso"
	LabelAssignment     = "asignación de computador"

	UnknownPersonLabel   = "Usuario Desconocido"
	MissingSerialDetails = "Detalles no disponibles"
)

// DashboardRow is the view-model union merging the three request collections
// into one uniform table shape.
type DashboardRow struct {
	Kind         RowKind
	ID           ID
	PersonLabel  string
	RequestLabel string
	Status       string
}

// StatusClass returns the presentation class for the row's status.
func (r DashboardRow) StatusClass() StatusClass {
	return ClassifyStatus(r.Status)
}

// KindLabel is the human-readable request-type label used in confirmation
// prompts.
func (k RowKind) KindLabel() string {
	switch k {
	case KindAccessRequest:
		return LabelAccessRequest
	case KindAssignment:
		return LabelAssignment
	default:
		return LabelPersonCreation
	}
}

// RowFromPerson normalizes a person record. The server does not supply a
// request label for these, so the default creation label is substituted.
func RowFromPerson(p Person) DashboardRow {
	label := p.Request
	if label == "" {
		label = LabelPersonCreation
	}
	return DashboardRow{
		Kind:         KindPersonCreation,
		ID:           p.ID,
		PersonLabel:  p.Name,
		RequestLabel: label,
		Status:       p.Status,
	}
}

// RowFromAccessRequest normalizes an access request, embedding the requested
// access-type string in the label.
func RowFromAccessRequest(r AccessRequest) DashboardRow {
	return DashboardRow{
		Kind:         KindAccessRequest,
		ID:           r.ID,
		PersonLabel:  r.UserName,
		RequestLabel: fmt.Sprintf("%s (%s)", LabelAccessRequest, r.AccessType),
		Status:       r.Status,
	}
}

// RowFromAssignment normalizes a computer assignment. Missing person names,
// serials and statuses get placeholders; status defaults to pending.
func RowFromAssignment(a ComputerAssignment) DashboardRow {
	person := a.UserName
	if person == "" {
		person = UnknownPersonLabel
	}
	details := MissingSerialDetails
	if a.ComputerSerial != "" {
		details = "Serial: " + a.ComputerSerial
	}
	status := a.Status
	if status == "" {
		status = WireStatusPending
	}
	return DashboardRow{
		Kind:         KindAssignment,
		ID:           a.ID,
		PersonLabel:  person,
		RequestLabel: fmt.Sprintf("%s (%s)", LabelAssignment, details),
		Status:       status,
	}
}
