package utils

const (
	// NODETOL is the relative distance, in sample index units, below which a
	// coordinate is considered to sit on a sample point.
	NODETOL = 1.e-12
)
