package hex

import (
	"strings"

	"hexstream.lol/errorf"
)

// Policy decides what happens to an odd number of hex digits on decode.
type Policy int

const (
	// Strict rejects odd length input with ErrOddLength.
	Strict Policy = iota
	// Lenient drops the trailing unpaired digit.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	}
	return "unknown"
}

// ParsePolicy reads a policy name as printed by Policy.String, ignoring case.
func ParsePolicy(s string) (p Policy, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		p = Strict
	case "lenient":
		p = Lenient
	default:
		err = errorf.D("unknown decode policy '%s', expected strict or lenient", s)
	}
	return
}
