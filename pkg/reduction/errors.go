package reduction

import (
	"fmt"
	"strings"
)

// UnsupportedReductionError is returned when the requested reduction kind is not implemented
type UnsupportedReductionError struct {
	Kind Kind
}

func (err *UnsupportedReductionError) Error() string {
	return fmt.Sprintf("reduction %q is not implemented", string(err.Kind))
}

// IncompatibleChainError is returned when a reduction's target problem is not the source problem of the next one
type IncompatibleChainError struct {
	Previous Kind
	Next     Kind
}

func (err *IncompatibleChainError) Error() string {
	return fmt.Sprintf("reduction %q produces %v instances but %q consumes %v instances",
		string(err.Previous), err.Previous.Target(), string(err.Next), err.Next.Source())
}

// InvariantViolation reports a broken post-construction check of a reduction. It signals a defect in the
// reduction itself, never bad input, and is raised by panicking
type InvariantViolation struct {
	Kind    Kind
	Message string
}

func (err *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violated in %v: %v", string(err.Kind), err.Message)
}

func invariant(kind Kind, condition bool, format string, args ...any) {
	if !condition {
		panic(&InvariantViolation{
			Kind:    kind,
			Message: strings.TrimSpace(fmt.Sprintf(format, args...)),
		})
	}
}
