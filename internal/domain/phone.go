package domain

import "strings"

// PhoneConstraints is shown when a phone number fails validation.
const PhoneConstraints = "Phone numbers should be exactly 8 digits, start with 3, 6, 8 or 9, and should not start with 99"

// Phone is a validated 8-digit local phone number.
type Phone struct {
	value string
}

// ParsePhone validates a raw phone string.
func ParsePhone(s string) (Phone, error) {
	trimmed := strings.TrimSpace(s)
	if !isValidPhone(trimmed) {
		return Phone{}, formatErr("phone", PhoneConstraints)
	}
	return Phone{value: trimmed}, nil
}

func isValidPhone(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	switch s[0] {
	case '3', '6', '8', '9':
	default:
		return false
	}
	// 99xxxxxx is reserved and never a subscriber number
	return !(s[0] == '9' && s[1] == '9')
}

func (p Phone) String() string {
	return p.value
}

// IsZero reports whether the phone is the unparsed zero value.
func (p Phone) IsZero() bool {
	return p.value == ""
}
