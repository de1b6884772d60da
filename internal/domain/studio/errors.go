// internal/domain/studio/errors.go
package studio

import (
	"errors"
	"fmt"
)

// ErrNotCustomizable is returned when a studio session is opened for a
// product that does not accept personalization
var ErrNotCustomizable = errors.New("product is not customizable")

// InvalidProductError means a product cannot seed a design
type InvalidProductError struct {
	ProductID string
	Reason    string
	Err       error
}

func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product %q: %s", e.ProductID, e.Reason)
}

func (e *InvalidProductError) Unwrap() error {
	return e.Err
}

// InvalidOptionError means a selection is outside its legal set. The
// design it was applied to is left unchanged.
type InvalidOptionError struct {
	Kind   OptionKind
	Value  string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Value, e.Reason)
}
