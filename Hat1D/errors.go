package Hat1D

import "errors"

var (
	// ErrInvalidDomain is returned for a domain without a < b and n >= 2
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrDomainMismatch is returned when two functions do not share (a, b, n)
	ErrDomainMismatch = errors.New("domain mismatch")
	// ErrOutOfDomain is returned for a coordinate outside [a, b] or a basis index outside [0, n)
	ErrOutOfDomain = errors.New("out of domain")
	// ErrValueMismatch is returned when joined functions disagree at the shared point
	ErrValueMismatch = errors.New("value mismatch")
)
