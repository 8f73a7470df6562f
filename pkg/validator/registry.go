package validator

import (
	"fmt"
	"sync"
)

// ConstraintValidator checks one kind of constraint. Implementations are
// stateless and safe for concurrent use.
type ConstraintValidator interface {
	// Kind returns the constraint kind handled by the validator.
	Kind() Kind
	// IsCorrect reports whether value satisfies c.
	IsCorrect(value any, c Constraint) (bool, error)
	// DescribeError returns the localized violation text, or false if value satisfies c.
	DescribeError(msg MessageFunc, value any, c Constraint) (string, bool, error)
}

// Registry maps constraint kinds to their validators. It is immutable once built.
type Registry struct {
	validators [numKinds]ConstraintValidator
}

// NewRegistry builds a registry from validators. Registering two validators
// for the same kind is a configuration error.
func NewRegistry(validators ...ConstraintValidator) (*Registry, error) {
	r := &Registry{}
	for _, v := range validators {
		if v == nil {
			continue
		}
		k := v.Kind()
		if k < 0 || k >= numKinds {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedConstraintKind, k)
		}
		if r.validators[k] != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateValidator, k)
		}
		r.validators[k] = v
	}
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(NotNullValidator{}, SizeValidator{}, EmailValidator{})
	if err != nil {
		panic(err)
	}
	return r
})

// DefaultRegistry returns the registry of the built-in validators.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Resolve returns the validator registered for kind.
func (r *Registry) Resolve(kind Kind) (ConstraintValidator, error) {
	if kind < 0 || kind >= numKinds || r.validators[kind] == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConstraintKind, kind)
	}
	return r.validators[kind], nil
}

// Kinds lists the registered kinds.
func (r *Registry) Kinds() []Kind {
	var kinds []Kind
	for k, v := range r.validators {
		if v != nil {
			kinds = append(kinds, Kind(k))
		}
	}
	return kinds
}
