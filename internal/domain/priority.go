package domain

import (
	"strconv"
	"strings"
)

// Priority bounds. Level 1 is the highest priority.
const (
	MinPriority = 1
	MaxPriority = 3
)

// PriorityConstraints is shown when a priority level fails validation.
const PriorityConstraints = "Priority should be an integer between 1 and 3"

// Priority is a client's importance level within the fixed valid range.
type Priority int

// ParsePriority validates a raw priority string.
func ParsePriority(s string) (Priority, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, formatErr("priority", PriorityConstraints)
	}
	return NewPriority(n)
}

// NewPriority validates an integer priority level.
func NewPriority(level int) (Priority, error) {
	if level < MinPriority || level > MaxPriority {
		return 0, formatErr("priority", PriorityConstraints)
	}
	return Priority(level), nil
}

func (p Priority) String() string {
	return strconv.Itoa(int(p))
}
