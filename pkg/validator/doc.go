// Package validator checks declarative field constraints and reports
// violations as a boolean, a field to message map, a joined message or an
// error.
//
// Constraints are attached to fields through a Schema declared once per
// type. The built-in kinds are NotNull, Size (with MinSize and MaxSize
// shorthands) and Email:
//
//	type Signup struct {
//		ID    *int
//		Name  string
//		Email string
//	}
//
//	var signupSchema = validator.MustSchema(
//		validator.FieldOf("id", func(s *Signup) *int { return s.ID }, validator.NotNull()),
//		validator.FieldOf("name", func(s *Signup) string { return s.Name }, validator.MinSize(3)),
//		validator.FieldOf("email", func(s *Signup) string { return s.Email }, validator.Email()),
//	)
//
// An Engine evaluates every constraint of every field in declaration order
// and folds the results:
//
//	engine, err := validator.New(validator.WithLocale("pl_PL"))
//	if err != nil {
//		return err
//	}
//	if err := engine.Validate(signupSchema.Bind(&signup)); err != nil {
//		if validator.IsValidationError(err) {
//			// err.Error() joins every violation
//		}
//		return err
//	}
//
// Each failing constraint contributes a "Field '<name>' <text>" clause; a
// field failing two constraints contributes two clauses. ValidateAs and
// ValidateFieldAs take a FailureFunc to build a caller-defined error from the
// joined message.
//
// # Absent values
//
// A value is absent when it is nil or a nil pointer. Size fails on an absent
// value without a message of its own, while Email fails with the value
// rendered as "null". Declare NotNull alongside either to report absence
// explicitly.
//
// # Errors
//
// Validation failures match ErrValidationFailed. Configuration errors
// (ErrUnsupportedConstraintKind, ErrUnsupportedValueType,
// ErrInvalidConstraint, ErrInvalidSchema, ErrDuplicateField), usage errors
// (ErrUnknownField) and read failures (ErrInternal) abort the call and are
// never reported as validation results.
//
// # Messages
//
// Messages are resolved through a Translator; the built-in English and
// Polish bundles are embedded. Locales such as "pl_PL" or "en-US" are matched
// to the closest bundle, falling back to English. ForLocale and ForContext
// derive engines for another locale without mutating shared state.
package validator
