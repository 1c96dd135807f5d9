package command

type fieldState int

const (
	fieldUnset fieldState = iota
	fieldClear
	fieldSet
)

// Field is a tri-state edit value: Unset (leave the client's value alone),
// Clear (erase the value), or Set (replace it). The zero value is Unset.
// Plain optionals cannot tell "not mentioned" apart from "mentioned but
// blank", which is exactly the distinction edits need.
type Field[T any] struct {
	state fieldState
	value T
}

// SetField returns a Field carrying a replacement value.
func SetField[T any](v T) Field[T] {
	return Field[T]{state: fieldSet, value: v}
}

// ClearField returns a Field that erases the target value.
func ClearField[T any]() Field[T] {
	return Field[T]{state: fieldClear}
}

// IsUnset reports whether the field was not mentioned at all.
func (f Field[T]) IsUnset() bool { return f.state == fieldUnset }

// IsClear reports whether the field erases the target value.
func (f Field[T]) IsClear() bool { return f.state == fieldClear }

// Get returns the replacement value; ok is false unless the field is Set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == fieldSet
}
