package validator

import "strings"

// FieldResult is the outcome of one field: Valid is the AND of its
// constraints and Message joins the text of every failing constraint.
//
// A field can fail without text: Size gives no message of its own for an
// absent value.
type FieldResult struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Report holds the field results of one validation in field declaration order.
type Report struct {
	Results []FieldResult `json:"results"`
}

// Valid reports whether every field passed.
func (r *Report) Valid() bool {
	if r == nil {
		return true
	}
	for _, res := range r.Results {
		if !res.Valid {
			return false
		}
	}
	return true
}

// Failed returns the failing fields in declaration order.
func (r *Report) Failed() []FieldResult {
	if r == nil {
		return nil
	}
	var failed []FieldResult
	for _, res := range r.Results {
		if !res.Valid {
			failed = append(failed, res)
		}
	}
	return failed
}

// Errors maps each failing field to its joined text.
func (r *Report) Errors() map[string]string {
	errs := make(map[string]string)
	for _, res := range r.Failed() {
		errs[res.Field] = res.Message
	}
	return errs
}

// Message joins the text of the failing fields with single spaces.
// ok is false when no field failed.
func (r *Report) Message() (message string, ok bool) {
	var sb strings.Builder
	for _, res := range r.Failed() {
		ok = true
		appendClause(&sb, res.Message)
	}
	return sb.String(), ok
}

// Has reports whether field failed.
func (r *Report) Has(field string) bool {
	res, ok := r.result(field)
	return ok && !res.Valid
}

// Get returns the joined text of field, empty if it passed.
func (r *Report) Get(field string) string {
	res, _ := r.result(field)
	return res.Message
}

func (r *Report) result(field string) (FieldResult, bool) {
	if r == nil {
		return FieldResult{}, false
	}
	for _, res := range r.Results {
		if res.Field == field {
			return res, true
		}
	}
	return FieldResult{}, false
}

// appendClause appends text, separated by a space from what is already there.
func appendClause(sb *strings.Builder, text string) {
	if text == "" {
		return
	}
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(text)
}
