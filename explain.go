package solveq

import "fmt"

// Step is one titled entry of a derivation trace.
type Step struct {
	Title  string
	Detail string
}

// Trace is an ordered, append-only sequence of derivation steps. Solvers
// write to it while they work; nothing in the solving logic ever reads it
// back. It exists purely for explanation layers.
//
// The zero value is an empty trace ready for use.
type Trace struct {
	steps []Step
}

// Append adds a step at the end of the trace.
func (tr *Trace) Append(title, detail string) {
	tr.steps = append(tr.steps, Step{Title: title, Detail: detail})
}

// Appendf adds a step with a formatted detail text.
func (tr *Trace) Appendf(title, format string, args ...interface{}) {
	tr.Append(title, fmt.Sprintf(format, args...))
}

// Len returns the number of steps.
func (tr *Trace) Len() int {
	return len(tr.steps)
}

// Steps returns the recorded steps in order. The slice is a copy.
func (tr *Trace) Steps() []Step {
	steps := make([]Step, len(tr.steps))
	copy(steps, tr.steps)
	return steps
}
