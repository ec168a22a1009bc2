package utils

import (
	"fmt"
	"strings"
)

// BCType represents the boundary condition types understood by the 1D solvers
type BCType uint16

const (
	// BCNone leaves the boundary coefficients as produced by the integrator
	BCNone BCType = iota
	// BCDirichlet fixes the value at each end of the domain
	BCDirichlet
	// BCNeumann fixes the slope at each end of the domain
	BCNeumann
	// BCPeriodic is reserved, no solver implements it yet
	BCPeriodic
)

// String returns the string representation of a BCType
func (bc BCType) String() string {
	switch bc {
	case BCNone:
		return "None"
	case BCDirichlet:
		return "Dirichlet"
	case BCNeumann:
		return "Neumann"
	case BCPeriodic:
		return "Periodic"
	}
	return "Unknown"
}

// BCNameMap provides a mapping from common boundary condition names to BCType
// Keys are lowercase for case-insensitive matching
var BCNameMap = map[string]BCType{
	"none":      BCNone,
	"free":      BCNone,
	"dirichlet": BCDirichlet,
	"fixed":     BCDirichlet,
	"value":     BCDirichlet,
	"neumann":   BCNeumann,
	"slope":     BCNeumann,
	"flux":      BCNeumann,
	"insulated": BCNeumann,
	"periodic":  BCPeriodic,
}

// ParseBCName converts a boundary condition name string to BCType
// The matching is case-insensitive and trims whitespace
func ParseBCName(name string) (BCType, error) {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if bcType, ok := BCNameMap[lowerName]; ok {
		return bcType, nil
	}
	return BCNone, fmt.Errorf("unknown boundary condition name %q", name)
}
