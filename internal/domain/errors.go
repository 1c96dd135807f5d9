package domain

// FormatError reports a field value that failed format validation.
// The message is fixed per field and is shown to the user verbatim.
type FormatError struct {
	Field   string
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

func formatErr(field, message string) error {
	return &FormatError{Field: field, Message: message}
}
