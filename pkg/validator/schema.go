package validator

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// FieldSpec declares one field of type T. Create it with FieldOf.
type FieldSpec[T any] struct {
	name        string
	typ         ValueType
	static      bool
	get         func(*T) any
	constraints []Constraint
}

// FieldOf declares a field of T read through get, with constraints evaluated
// in the given order.
func FieldOf[T, V any](name string, get func(*T) V, constraints ...Constraint) FieldSpec[T] {
	typ, static := valueTypeOf(reflect.TypeFor[V]())

	spec := FieldSpec[T]{
		name:        name,
		typ:         typ,
		static:      static,
		constraints: slices.Clone(constraints),
	}
	if get != nil {
		spec.get = func(t *T) any { return get(t) }
	}
	return spec
}

// Schema is the field descriptor list of a target type, declared once and
// reused for every validation of that type.
type Schema[T any] struct {
	fields []FieldSpec[T]
}

// NewSchema checks the declarations and builds a Schema.
//
// Size constraints on statically non-sizable types and Email constraints on
// statically non-text types are rejected here; interface-typed fields are
// checked when validated.
func NewSchema[T any](fields ...FieldSpec[T]) (*Schema[T], error) {
	seen := make(map[string]bool, len(fields))

	for _, f := range fields {
		if f.name == "" {
			return nil, errors.Join(ErrInvalidSchema, errors.New("field name is empty"))
		}
		if f.get == nil {
			return nil, errors.Join(ErrInvalidSchema, fmt.Errorf("field %q has no accessor", f.name))
		}
		if seen[f.name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.name)
		}
		seen[f.name] = true

		for _, c := range f.constraints {
			if err := c.check(); err != nil {
				return nil, fmt.Errorf("field %q: %w", f.name, err)
			}
			if err := f.checkType(c); err != nil {
				return nil, err
			}
		}
	}

	return &Schema[T]{fields: slices.Clone(fields)}, nil
}

// MustSchema is like NewSchema but panics on an invalid declaration.
// It is meant for package-level schema variables.
func MustSchema[T any](fields ...FieldSpec[T]) *Schema[T] {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(fmt.Sprintf("invalid schema for %T: %v", *new(T), err))
	}
	return s
}

func (f FieldSpec[T]) checkType(c Constraint) error {
	if !f.static {
		return nil
	}
	switch {
	case c.Kind == KindSize && f.typ == TypeOther:
		return fmt.Errorf("%w: field %q: %s needs text or a collection", ErrUnsupportedValueType, f.name, c)
	case c.Kind == KindEmail && f.typ != TypeText:
		return fmt.Errorf("%w: field %q: %s needs text, got %s", ErrUnsupportedValueType, f.name, c, f.typ)
	}
	return nil
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema[T]) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Bind returns a Source yielding the fields of target. Reading a value never
// modifies target; a nil target or a panicking accessor is an internal error.
func (s *Schema[T]) Bind(target *T) Source {
	return SourceFunc(func() ([]Field, error) {
		if target == nil {
			return nil, errors.Join(ErrInternal, fmt.Errorf("nil %T target", target))
		}

		fields := make([]Field, len(s.fields))
		for i, spec := range s.fields {
			fields[i] = Field{
				Name:        spec.name,
				Type:        spec.typ,
				Constraints: spec.constraints,
				Value: func() (v any, err error) {
					defer func() {
						if r := recover(); r != nil {
							err = fmt.Errorf("accessor panicked: %v", r)
						}
					}()
					return spec.get(target), nil
				},
			}
		}
		return fields, nil
	})
}
