package solveq

// Error is an error type for the solveq module. Only programmer errors,
// i.e. misuse of the API, surface through this channel; algebraic outcomes like
// "no solution" are Solution values, never errors.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrNilEquation is flagged when Solve is called without an equation.
const ErrNilEquation = Error("equation must not be nil")

// ErrNilTarget is flagged when Solve is called without a target symbol.
const ErrNilTarget = Error("target symbol must not be nil")

// ErrNoEquations is flagged when SolveSystem is called with an empty
// equation set.
const ErrNoEquations = Error("system must contain at least one equation")

// ErrNoUnknowns is flagged when SolveSystem is called without unknowns.
const ErrNoUnknowns = Error("system must name at least one unknown")
