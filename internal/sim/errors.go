package sim

import "fmt"

// ParamError reports a configuration value rejected at the API boundary.
// Values are never clamped: silently altering a mass or a step size would
// change what the simulation means, so the offending call fails instead.
type ParamError struct {
	Op    string
	Param string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: invalid %s %g", e.Op, e.Param, e.Value)
}

// NumericError reports a non-finite position produced by a step,
// typically from an exactly coincident pair or an extreme mass ratio.
// The step that produced it is rolled back before the error is returned,
// so the simulation remains usable.
type NumericError struct {
	Body int
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("step: non-finite position for body %d", e.Body)
}
