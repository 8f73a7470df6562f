package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unbounded is the upper size bound of a Size constraint declared without a maximum.
const Unbounded = math.MaxInt

// Kind identifies which rule a constraint applies.
type Kind int

const (
	// KindNotNull requires the field value to be present.
	KindNotNull Kind = iota
	// KindSize bounds the character count of text or the element count of a collection.
	KindSize
	// KindEmail requires text shaped like an email address.
	KindEmail

	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindNotNull:
		return "NotNull"
	case KindSize:
		return "Size"
	case KindEmail:
		return "Email"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Constraint is a declaration attached to a field. Min and Max are only
// meaningful for KindSize; both bounds are inclusive.
type Constraint struct {
	Kind Kind
	Min  int
	Max  int
}

// NotNull declares that the field must not be absent.
func NotNull() Constraint {
	return Constraint{Kind: KindNotNull}
}

// Email declares that the field must hold an email address.
func Email() Constraint {
	return Constraint{Kind: KindEmail}
}

// Size declares inclusive lower and upper size bounds.
func Size(min, max int) Constraint {
	return Constraint{Kind: KindSize, Min: min, Max: max}
}

// MinSize declares a lower size bound only.
func MinSize(min int) Constraint {
	return Size(min, Unbounded)
}

// MaxSize declares an upper size bound only.
func MaxSize(max int) Constraint {
	return Size(0, max)
}

func (c Constraint) String() string {
	if c.Kind != KindSize {
		return c.Kind.String()
	}

	var params []string
	if c.Min != 0 {
		params = append(params, fmt.Sprintf("min=%d", c.Min))
	}
	if c.Max != Unbounded {
		params = append(params, fmt.Sprintf("max=%d", c.Max))
	}
	return "Size(" + strings.Join(params, ", ") + ")"
}

// check reports declaration errors that do not depend on any field value.
func (c Constraint) check() error {
	if c.Kind < 0 || c.Kind >= numKinds {
		return fmt.Errorf("%w: %s", ErrUnsupportedConstraintKind, c.Kind)
	}
	if c.Kind == KindSize {
		if c.Min < 0 {
			return fmt.Errorf("%w: %s has a negative minimum", ErrInvalidConstraint, c)
		}
		if c.Min > c.Max {
			return fmt.Errorf("%w: %s has minimum greater than maximum", ErrInvalidConstraint, c)
		}
	}
	return nil
}
