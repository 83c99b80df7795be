package form

import (
	"context"
	"fmt"
	"strings"

	perrors "github.com/teamops-io/personnel-cli/pkg/errors"
)

// FieldKind distinguishes how a field is filled and therefore how it is
// validated.
type FieldKind int

const (
	// Text is a free-text entry; required means non-empty after trimming.
	Text FieldKind = iota
	// Select is a single-choice selector; required means a choice was made.
	Select
	// MultiSelect is a checkbox set; required means at least one member.
	MultiSelect
)

// Field describes one form field.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
}

// State is the form lifecycle state.
type State int

const (
	// StateFetching is the leading state of edit forms while the backing
	// record loads. Create forms never enter it.
	StateFetching State = iota
	// StateReady accepts edits and submissions.
	StateReady
	// StateNotFound means the backing record does not exist.
	StateNotFound
	// StateFetchFailed means the backing record could not be loaded.
	StateFetchFailed
	// StateSubmitting is set while the write request is in flight.
	StateSubmitting
	// StateSucceeded is terminal; the caller navigates away.
	StateSucceeded
)

// ValidationError names the field that blocked submission. It is detected
// locally and never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return perrors.ErrValidation
}

// Form is a record form backed by local state, seeded either from defaults
// (create mode) or from a fetched record (edit mode). One instance owns its
// state exclusively; a failure leaves it on StateReady with the message set
// so the user can adjust and retry.
type Form struct {
	fields []Field
	values map[string]string
	multi  map[string][]string
	state  State
	errMsg string
}

// NewCreate builds a form starting empty and ready for input.
func NewCreate(fields ...Field) *Form {
	f := newForm(fields)
	f.state = StateReady
	return f
}

// NewEdit builds a form that must be seeded from a fetched record before it
// can validate or submit.
func NewEdit(fields ...Field) *Form {
	return newForm(fields)
}

func newForm(fields []Field) *Form {
	return &Form{
		fields: fields,
		values: make(map[string]string),
		multi:  make(map[string][]string),
		state:  StateFetching,
	}
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	return f.state
}

// Err returns the inline user-facing message, empty when none.
func (f *Form) Err() string {
	return f.errMsg
}

// Seed populates field values from a fetched record and moves the form to
// StateReady.
func (f *Form) Seed(values map[string]string, multi map[string][]string) {
	for name, v := range values {
		f.values[name] = v
	}
	for name, vs := range multi {
		f.multi[name] = append([]string(nil), vs...)
	}
	f.state = StateReady
	f.errMsg = ""
}

// FetchFailed records that the backing record could not be loaded. notFound
// distinguishes a missing record from a transport/application failure.
func (f *Form) FetchFailed(notFound bool, message string) {
	if notFound {
		f.state = StateNotFound
	} else {
		f.state = StateFetchFailed
	}
	f.errMsg = message
}

// Set stores a text or select value.
func (f *Form) Set(name, value string) {
	f.values[name] = value
}

// Value returns a stored text or select value.
func (f *Form) Value(name string) string {
	return f.values[name]
}

// SetMulti replaces a multi-select's member set.
func (f *Form) SetMulti(name string, values []string) {
	f.multi[name] = append([]string(nil), values...)
}

// Toggle flips one option's membership in a multi-select.
func (f *Form) Toggle(name, option string) {
	current := f.multi[name]
	for i, v := range current {
		if v == option {
			f.multi[name] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
	f.multi[name] = append(current, option)
}

// Multi returns a multi-select's current member set.
func (f *Form) Multi(name string) []string {
	return f.multi[name]
}

// CanSubmit gates submission: the form must be ready and not already in
// flight.
func (f *Form) CanSubmit() bool {
	return f.state == StateReady
}

// Validate runs the synchronous validation pass. The first failing rule wins
// and its message becomes the inline error.
func (f *Form) Validate() error {
	for _, field := range f.fields {
		if !field.Required {
			continue
		}
		label := strings.ToLower(field.Label)
		switch field.Kind {
		case Select:
			if f.values[field.Name] == "" {
				return f.invalid(field.Name, fmt.Sprintf("please select a %s", label))
			}
		case MultiSelect:
			if len(f.multi[field.Name]) == 0 {
				return f.invalid(field.Name, fmt.Sprintf("please select at least one %s", label))
			}
		default:
			if strings.TrimSpace(f.values[field.Name]) == "" {
				return f.invalid(field.Name, fmt.Sprintf("%s cannot be empty", label))
			}
		}
	}
	return nil
}

func (f *Form) invalid(field, message string) error {
	f.errMsg = message
	return &ValidationError{Field: field, Message: message}
}

// Submit validates and, only when valid, runs the write call. Invalid forms
// make no request. On failure the form stays ready with the server-extracted
// message displayed; on success it is terminal.
func (f *Form) Submit(ctx context.Context, send func(context.Context) (string, error)) (string, error) {
	if !f.CanSubmit() {
		return "", fmt.Errorf("form is not ready to submit")
	}
	if err := f.Validate(); err != nil {
		return "", err
	}

	f.errMsg = ""
	f.state = StateSubmitting
	message, err := send(ctx)
	if err != nil {
		f.state = StateReady
		f.errMsg = err.Error()
		return "", err
	}

	f.state = StateSucceeded
	return message, nil
}
