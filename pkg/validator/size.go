package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SizeValidator bounds the character count of text, the element count of
// slices and arrays and the key count of maps.
//
// An absent value fails the constraint without a message of its own;
// presence is reported by NotNull.
type SizeValidator struct{}

func (SizeValidator) Kind() Kind { return KindSize }

func (SizeValidator) IsCorrect(value any, c Constraint) (bool, error) {
	if err := expectKind(c, KindSize); err != nil {
		return false, err
	}
	if isAbsent(value) {
		return false, nil
	}

	n, err := sizeOf(value)
	if err != nil {
		return false, err
	}
	return c.Min <= n && n <= c.Max, nil
}

func (v SizeValidator) DescribeError(msg MessageFunc, value any, c Constraint) (string, bool, error) {
	ok, err := v.IsCorrect(value, c)
	if err != nil || ok || isAbsent(value) {
		return "", false, err
	}

	tooShort, tooLong := KeySizeCollectionTooShort, KeySizeCollectionTooLong
	if isText(value) {
		tooShort, tooLong = KeySizeTextTooShort, KeySizeTextTooLong
	}

	clauses := []string{msg(KeySizeNotProper)}
	if c.Min != 0 {
		clauses = append(clauses, msg(tooShort, "min", strconv.Itoa(c.Min)))
	}
	if c.Max != Unbounded {
		clauses = append(clauses, msg(tooLong, "max", strconv.Itoa(c.Max)))
	}
	return strings.Join(clauses, " "), true, nil
}

func sizeOf(value any) (int, error) {
	rv := reflect.ValueOf(indirect(value))
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), nil
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), nil
	default:
		return 0, fmt.Errorf("%w: size of %T", ErrUnsupportedValueType, value)
	}
}

func isText(value any) bool {
	return reflect.ValueOf(indirect(value)).Kind() == reflect.String
}
