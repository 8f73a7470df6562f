package validator

import (
	"errors"
	"fmt"
	"reflect"
)

// ValueType is the declared semantic type of a field.
type ValueType int

const (
	TypeOther ValueType = iota
	TypeText
	TypeSequence
	TypeMapping
)

func (t ValueType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeSequence:
		return "sequence"
	case TypeMapping:
		return "mapping"
	default:
		return "other"
	}
}

// Field describes one field of a target instance: its name, declared type,
// constraints in declaration order and an accessor bound to the instance.
type Field struct {
	Name        string
	Type        ValueType
	Constraints []Constraint
	Value       func() (any, error)
}

// read returns the current field value. Accessor failures are internal
// errors, never validation failures.
func (f Field) read() (any, error) {
	if f.Value == nil {
		return nil, nil
	}
	v, err := f.Value()
	if err != nil {
		return nil, errors.Join(ErrInternal, fmt.Errorf("reading field %q: %w", f.Name, err))
	}
	return v, nil
}

// Source yields the fields of one target in declaration order.
type Source interface {
	Fields() ([]Field, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() ([]Field, error)

// Fields implements Source.
func (f SourceFunc) Fields() ([]Field, error) {
	return f()
}

// valueTypeOf classifies a static Go type. Pointers are classified by the
// type they point to; interface types cannot be classified statically.
func valueTypeOf(t reflect.Type) (ValueType, bool) {
	if t == nil {
		return TypeOther, false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return TypeText, true
	case reflect.Slice, reflect.Array:
		return TypeSequence, true
	case reflect.Map:
		return TypeMapping, true
	case reflect.Interface:
		return TypeOther, false
	default:
		return TypeOther, true
	}
}

// isAbsent reports whether v is nil or a nil pointer, interface, func,
// channel or unsafe pointer. Nil slices and maps are present values of size
// zero.
func isAbsent(v any) bool {
	return indirect(v) == nil
}

// indirect dereferences pointers until a non-pointer value is reached and
// returns nil if a nil pointer is met on the way.
func indirect(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return nil
		}
	}
	return rv.Interface()
}
