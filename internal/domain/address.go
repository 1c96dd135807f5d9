package domain

import "strings"

// AddressConstraints is shown when an address fails validation.
const AddressConstraints = "Addresses can take any values, and should not be blank"

// Address is a client's free-text postal address.
type Address struct {
	value string
}

// ParseAddress validates a raw address string.
func ParseAddress(s string) (Address, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Address{}, formatErr("address", AddressConstraints)
	}
	return Address{value: trimmed}, nil
}

func (a Address) String() string {
	return a.value
}

// IsZero reports whether the address is the unparsed zero value.
func (a Address) IsZero() bool {
	return a.value == ""
}
