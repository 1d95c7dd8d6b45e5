// Package tui provides the terminal user interface for todo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // List navigation
	ModeInput               // Add-task form has focus
	ModeConfirm             // Confirmation dialog
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeInput
}

// FormField identifies a field of the add-task form.
type FormField int

const (
	FieldText FormField = iota // Task text
	FieldDate                  // YYYY-MM-DD
)

// Next returns the field tab moves to.
func (f FormField) Next() FormField {
	if f == FieldText {
		return FieldDate
	}
	return FieldText
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	}
	return ""
}
