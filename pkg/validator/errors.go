package validator

import "errors"

// Configuration errors: declared metadata or target shape the engine cannot handle.
var (
	// ErrUnsupportedConstraintKind is returned when a constraint kind has no registered validator.
	ErrUnsupportedConstraintKind = errors.New("unsupported constraint kind")

	// ErrUnsupportedValueType is returned when a constraint is declared on a value it cannot inspect.
	ErrUnsupportedValueType = errors.New("unsupported value type")

	// ErrInvalidConstraint is returned when a constraint declaration has inconsistent parameters.
	ErrInvalidConstraint = errors.New("invalid constraint")

	// ErrDuplicateField is returned when a schema declares the same field name twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrInvalidSchema is returned when a field declaration has no name or no accessor.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrDuplicateValidator is returned when a registry is given two validators of the same kind.
	ErrDuplicateValidator = errors.New("duplicate constraint validator")
)

var (
	// ErrUnknownField is returned when the requested field does not exist on the target.
	ErrUnknownField = errors.New("unknown field")

	// ErrInternal is returned when a field value cannot be read from the target.
	ErrInternal = errors.New("internal validator error")

	// ErrValidationFailed is matched by every failure produced by the default failure factory.
	ErrValidationFailed = errors.New("validation failed")
)

// FailureFunc converts the aggregated message of a failed validation into
// the error returned to the caller.
type FailureFunc func(message string) error

// ValidationError is the default failure returned by Validate and ValidateField.
type ValidationError struct {
	Message string
}

// NewValidationError is the default FailureFunc.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return ErrValidationFailed.Error()
	}
	return e.Message
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractValidationError extracts the default ValidationError from an error chain.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err is a failure produced by the default factory.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// raise builds the failure for message, falling back to the default factory
// when fail is nil or declines to produce an error.
func raise(fail FailureFunc, message string) error {
	if fail != nil {
		if err := fail(message); err != nil {
			return err
		}
	}
	return NewValidationError(message)
}
