package prep

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTargetMissing is the defensive re-check failure: the DEFAULT
// column vanished between resolution and persistence.
var ErrTargetMissing = errors.New("target column DEFAULT not present after preprocessing")

// TargetNotFoundError is returned when no dataset column matches any
// configured target candidate.
type TargetNotFoundError struct {
	Candidates []string // configured candidates, as given
	Columns    []string // dataset columns, canonical form
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("none of the target candidates [%s] found in columns [%s]",
		strings.Join(e.Candidates, ", "), strings.Join(e.Columns, ", "))
}

// TargetDomainError is returned when a coerced target value falls
// outside {0,1}. Unreachable when row dropping works as intended, but
// enforced anyway.
type TargetDomainError struct {
	Value int
}

func (e *TargetDomainError) Error() string {
	return fmt.Sprintf("target value %d outside {0,1} after coercion", e.Value)
}

// TargetCardinalityError is returned when the final target does not
// hold exactly two distinct values.
type TargetCardinalityError struct {
	Distinct []int
}

func (e *TargetCardinalityError) Error() string {
	return fmt.Sprintf("target DEFAULT should be binary (0/1), found %d distinct value(s)", len(e.Distinct))
}
