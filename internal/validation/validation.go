package validation

import "unicode/utf8"

// Rule describes the constraints applied to a single form field. A rule with
// a nil MinNumber places no numeric constraint; a zero MinLength places no
// length constraint. Message is the error reported when the rule fails.
type Rule struct {
	Required  bool
	MinLength int
	MinNumber *int
	Message   string
}

// Schema maps field names to their rules.
type Schema map[string]Rule

// Errors maps field names to the error message of the first failing rule.
type Errors map[string]string

// Validate checks a field-value map against the schema and returns per-field
// error messages, or nil when every field passes. String fields are checked
// for required-ness and minimum length; int fields for minimum value. A field
// missing from values is treated as the zero value of its rule's kind.
func (s Schema) Validate(values map[string]interface{}) Errors {
	errs := make(Errors)

	for field, rule := range s {
		switch v := values[field].(type) {
		case string:
			if rule.Required && v == "" {
				errs[field] = rule.Message
				continue
			}
			// Length is counted in characters, not bytes, so multibyte
			// input is measured the way the form presents it.
			if rule.MinLength > 0 && utf8.RuneCountInString(v) < rule.MinLength {
				errs[field] = rule.Message
			}
		case int:
			if rule.MinNumber != nil && v < *rule.MinNumber {
				errs[field] = rule.Message
			}
		case nil:
			if rule.Required {
				errs[field] = rule.Message
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// MinNumber is a convenience for rules with a numeric lower bound.
func MinNumber(n int) *int {
	return &n
}
