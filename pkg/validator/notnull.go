package validator

import "fmt"

// NotNullValidator accepts every present value.
type NotNullValidator struct{}

func (NotNullValidator) Kind() Kind { return KindNotNull }

func (NotNullValidator) IsCorrect(value any, c Constraint) (bool, error) {
	if err := expectKind(c, KindNotNull); err != nil {
		return false, err
	}
	return !isAbsent(value), nil
}

func (v NotNullValidator) DescribeError(msg MessageFunc, value any, c Constraint) (string, bool, error) {
	ok, err := v.IsCorrect(value, c)
	if err != nil || ok {
		return "", false, err
	}
	return msg(KeyNotNull), true, nil
}

func expectKind(c Constraint, want Kind) error {
	if c.Kind != want {
		return fmt.Errorf("%w: %s validator cannot check %s", ErrUnsupportedConstraintKind, want, c.Kind)
	}
	return nil
}
