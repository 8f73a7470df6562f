package validator

import (
	"fmt"
	"reflect"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[_A-Za-z0-9\-+]+(\.[_A-Za-z0-9\-]+)*@[A-Za-z0-9\-]+(\.[A-Za-z0-9]+)*(\.[A-Za-z]{2,})$`)

// EmailValidator accepts text shaped like local@domain.tld.
// An absent value is not an email.
type EmailValidator struct{}

func (EmailValidator) Kind() Kind { return KindEmail }

func (EmailValidator) IsCorrect(value any, c Constraint) (bool, error) {
	if err := expectKind(c, KindEmail); err != nil {
		return false, err
	}
	if isAbsent(value) {
		return false, nil
	}

	rv := reflect.ValueOf(indirect(value))
	if rv.Kind() != reflect.String {
		return false, fmt.Errorf("%w: email of %T", ErrUnsupportedValueType, value)
	}
	return emailRegex.MatchString(rv.String()), nil
}

func (v EmailValidator) DescribeError(msg MessageFunc, value any, c Constraint) (string, bool, error) {
	ok, err := v.IsCorrect(value, c)
	if err != nil || ok {
		return "", false, err
	}

	text := "null"
	if !isAbsent(value) {
		text = fmt.Sprint(indirect(value))
	}
	return msg(KeyEmail, "value", text), true, nil
}
