package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FrequencyConstraints is shown when a purchase frequency fails validation.
const FrequencyConstraints = "Frequency should be a non-negative integer"

// PreferenceConstraints is shown when a product preference label is blank.
const PreferenceConstraints = "Product preference cannot be empty or whitespace only"

// DefaultFrequency is assumed when a preference is supplied without an
// explicit frequency.
const DefaultFrequency = Frequency(1)

// Frequency is the number of times a client purchased their preferred product.
type Frequency int

// ParseFrequency validates a raw frequency string.
func ParseFrequency(s string) (Frequency, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, formatErr("frequency", FrequencyConstraints)
	}
	return Frequency(n), nil
}

func (f Frequency) String() string {
	return strconv.Itoa(int(f))
}

// ProductPreference is the product a client favors together with how often
// they have purchased it.
type ProductPreference struct {
	label     string
	frequency Frequency
}

// NewProductPreference builds a preference from a label and an optional
// frequency. A nil frequency falls back to DefaultFrequency; a blank label is
// rejected.
func NewProductPreference(label string, frequency *Frequency) (ProductPreference, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return ProductPreference{}, formatErr("preference", PreferenceConstraints)
	}
	freq := DefaultFrequency
	if frequency != nil {
		freq = *frequency
	}
	return ProductPreference{label: trimmed, frequency: freq}, nil
}

// Label returns the product label.
func (p ProductPreference) Label() string {
	return p.label
}

// Frequency returns the purchase count.
func (p ProductPreference) Frequency() Frequency {
	return p.frequency
}

func (p ProductPreference) String() string {
	return fmt.Sprintf("%s (x%d)", p.label, p.frequency)
}
