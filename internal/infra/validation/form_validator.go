// Package validation implements the form field rules on top of go-playground/validator.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"textura/internal/domain/entity"
	"textura/internal/domain/service"
)

// Messages shown for each violated rule.
const (
	MsgNameMinLength            = "Name must contain at least 2 characters"
	MsgEmailInvalid             = "Enter a valid e-mail"
	MsgPasswordMinLength        = "At least 6 characters"
	MsgPasswordNoSpaces         = "Password must not contain spaces"
	MsgPasswordAllowedChars     = "Allowed: latin letters, digits, !@#$%"
	MsgPasswordRequireDigit     = "Add at least one digit"
	MsgPasswordRequireSpecial   = "Add at least one special character (!@#$%)"
	MsgPasswordRequireUppercase = "Add at least one uppercase letter"
	MsgPhoneInvalidFormat       = "Enter a phone number in the format +7 (XXX) XXX-XX-XX"
	MsgCommentEmpty             = "Comment cannot be empty"
	MsgCommentTooShort          = "Comment is too short"
	MsgCommentTooLong           = "Comment is too long (maximum 500 characters)"
	MsgUnsupportedField         = "Unsupported field"
)

var (
	emailPattern           = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern           = regexp.MustCompile(`^\+7\d{10}$`)
	passwordCharsetPattern = regexp.MustCompile(`^[A-Za-z0-9!@#$%]+$`)
	digitPattern           = regexp.MustCompile(`\d`)
	specialPattern         = regexp.MustCompile(`[!@#$%]`)
	uppercasePattern       = regexp.MustCompile(`[A-Z]`)
)

// rule is one validator tag and the message reported when it fails.
type rule struct {
	tag     string
	message string
}

type fieldRules struct {
	trim  bool
	rules []rule
}

// Rules run in order and every failing rule contributes its own message.
var rulesByField = map[entity.FieldKind]fieldRules{
	entity.FieldName: {trim: true, rules: []rule{
		{tag: "min=2", message: MsgNameMinLength},
	}},
	entity.FieldEmail: {rules: []rule{
		{tag: "store_email", message: MsgEmailInvalid},
	}},
	entity.FieldPassword: {trim: true, rules: []rule{
		{tag: "min=6", message: MsgPasswordMinLength},
		{tag: "no_whitespace", message: MsgPasswordNoSpaces},
		{tag: "password_charset", message: MsgPasswordAllowedChars},
		{tag: "has_digit", message: MsgPasswordRequireDigit},
		{tag: "has_special", message: MsgPasswordRequireSpecial},
		{tag: "has_uppercase", message: MsgPasswordRequireUppercase},
	}},
	entity.FieldPhone: {rules: []rule{
		{tag: "store_phone", message: MsgPhoneInvalidFormat},
	}},
	entity.FieldComment: {trim: true, rules: []rule{
		{tag: "required", message: MsgCommentEmpty},
		{tag: "min=3", message: MsgCommentTooShort},
		{tag: "max=500", message: MsgCommentTooLong},
	}},
}

// formValidator is a concrete implementation of the FormValidator interface.
type formValidator struct {
	validate *validator.Validate
}

// NewFormValidator is the constructor for formValidator.
// It registers the storefront-specific tags on a fresh validator instance.
func NewFormValidator() (service.FormValidator, error) {
	validate := validator.New()

	custom := map[string]validator.Func{
		"store_email":      matches(emailPattern),
		"store_phone":      matches(phonePattern),
		"password_charset": matches(passwordCharsetPattern),
		"has_digit":        contains(digitPattern),
		"has_special":      contains(specialPattern),
		"has_uppercase":    contains(uppercasePattern),
		"no_whitespace":    noWhitespace,
	}
	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, errors.Wrapf(err, "register validation %q", tag)
		}
	}

	return &formValidator{validate: validate}, nil
}

// Validate checks text against the rules of kind.
func (v *formValidator) Validate(text string, kind entity.FieldKind) entity.ValidationResult {
	fieldRules, ok := rulesByField[kind]
	if !ok {
		return entity.NewValidationResult([]string{MsgUnsupportedField})
	}

	value := text
	if fieldRules.trim {
		value = strings.TrimSpace(value)
	}

	var messages []string
	for _, r := range fieldRules.rules {
		if err := v.validate.Var(value, r.tag); err != nil {
			messages = append(messages, r.message)
		}
	}

	return entity.NewValidationResult(messages)
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func contains(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.FindStringIndex(fl.Field().String()) != nil
	}
}

func noWhitespace(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsSpace) < 0
}
