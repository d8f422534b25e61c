package entity

// FieldKind names the rule set a form value is validated against.
type FieldKind string

const (
	FieldName     FieldKind = "name"
	FieldEmail    FieldKind = "email"
	FieldPassword FieldKind = "password"
	FieldPhone    FieldKind = "phone"
	FieldComment  FieldKind = "comment"
)

// ValidationResult is the outcome of validating one value. Violations are returned as data, never as errors.
type ValidationResult struct {
	IsValid  bool
	Messages []string
}

// NewValidationResult builds a result from the collected violation messages.
func NewValidationResult(messages []string) ValidationResult {
	if messages == nil {
		messages = []string{}
	}

	return ValidationResult{
		IsValid:  len(messages) == 0,
		Messages: messages,
	}
}

// Message returns the primary message for single-line display, or "" when valid.
func (r ValidationResult) Message() string {
	if len(r.Messages) == 0 {
		return ""
	}

	return r.Messages[0]
}
