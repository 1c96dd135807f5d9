package command

// User-visible messages for command-stage failures. Each is fixed so the same
// failure always reads the same way.
const (
	MsgUnknownCommand  = "Unknown command"
	MsgInvalidFormat   = "Invalid command format!\n%s"
	MsgInvalidIndex    = "The client index provided is positive but out of range"
	MsgIndexFormat     = "Index is not a non-zero unsigned integer."
	MsgNothingEdited   = "At least one field to edit must be provided."
	MsgDuplicateClient = "This client already exists in the registry."
	MsgFrequencyAlone  = "Frequency cannot be supplied without a product preference."
	MsgUnknownRankKey  = "Please provide a valid ranking keyword: name or total"
	MsgOneFilterOnly   = "Filter takes exactly one condition, pref/PRODUCT or priority/LEVEL, " +
		"and the argument must not be empty"
	msgDuplicatePrefixes = "Multiple values specified for the following single-valued field(s): "
)

// ValidationError is a business-rule violation detected at the command stage:
// nothing to edit, an ambiguous filter, an out-of-range index. It is recovered
// at the command boundary and shown verbatim; the registry is untouched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
