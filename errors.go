package gears

import "errors"

var (
	// ErrInvalidInput indicates a caller-supplied parameter violated a
	// precondition. Detected before any geometry is built.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInfeasibleGeometry indicates the requested parameter combination
	// has no valid solution (for example a combined profile shift too
	// negative for the tooth counts, or a ring gear smaller than its mate).
	ErrInfeasibleGeometry = errors.New("infeasible geometry")
	// ErrConvergence indicates a numeric search (involute sampling or the
	// working-pressure-angle root finder) exhausted its iteration budget.
	ErrConvergence = errors.New("root finder did not converge")
)
