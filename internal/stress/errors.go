package stress

import "fmt"

// DivisionByZeroError is returned when a computation is asked to divide by a zero area
type DivisionByZeroError struct {
	Quantity string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %s is zero", e.Quantity)
}

// InvalidInputError reports a force, area or curve parameter outside its domain
type InvalidInputError struct {
	Field      string
	Value      float64
	Constraint string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s = %g: %s", e.Field, e.Value, e.Constraint)
}
