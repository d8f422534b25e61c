package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textura/internal/domain/entity"
)

func newTestValidator(t *testing.T) *formValidator {
	t.Helper()

	v, err := NewFormValidator()
	require.NoError(t, err)

	fv, ok := v.(*formValidator)
	require.True(t, ok)

	return fv
}

func TestFormValidator_Password(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name     string
		input    string
		valid    bool
		expected []string
		contains []string
	}{
		{
			name:     "missing special and uppercase",
			input:    "abc123",
			expected: []string{MsgPasswordRequireSpecial, MsgPasswordRequireUppercase},
		},
		{
			name:  "valid password",
			input: "Abc1!2",
			valid: true,
		},
		{
			name:     "inner space",
			input:    "ab c1!",
			contains: []string{MsgPasswordNoSpaces, MsgPasswordAllowedChars},
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  Abc1!2  ",
			valid: true,
		},
		{
			name:  "empty password violates every rule",
			input: "",
			expected: []string{
				MsgPasswordMinLength,
				MsgPasswordAllowedChars,
				MsgPasswordRequireDigit,
				MsgPasswordRequireSpecial,
				MsgPasswordRequireUppercase,
			},
		},
		{
			name:     "cyrillic letters are not allowed",
			input:    "Пароль1!A",
			expected: []string{MsgPasswordAllowedChars},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.input, entity.FieldPassword)

			assert.Equal(t, tt.valid, result.IsValid)
			if tt.valid {
				assert.Empty(t, result.Messages)
			}
			if tt.expected != nil {
				assert.Equal(t, tt.expected, result.Messages)
			}
			for _, msg := range tt.contains {
				assert.Contains(t, result.Messages, msg)
			}
		})
	}
}

func TestFormValidator_Email(t *testing.T) {
	v := newTestValidator(t)

	assert.True(t, v.Validate("a@b.co", entity.FieldEmail).IsValid)
	assert.True(t, v.Validate("first.last+tag@shop-mail.example.org", entity.FieldEmail).IsValid)

	for _, input := range []string{"a@b", "", "@b.co", "a@b.c", "a b@c.com"} {
		result := v.Validate(input, entity.FieldEmail)
		assert.False(t, result.IsValid, input)
		assert.Equal(t, []string{MsgEmailInvalid}, result.Messages, input)
	}
}

func TestFormValidator_Phone(t *testing.T) {
	v := newTestValidator(t)

	assert.True(t, v.Validate("+79991234567", entity.FieldPhone).IsValid)

	for _, input := range []string{"+7999123456", "89991234567", "+799912345678", "+7 999 123 45 67"} {
		result := v.Validate(input, entity.FieldPhone)
		assert.False(t, result.IsValid, input)
		assert.Equal(t, MsgPhoneInvalidFormat, result.Message(), input)
	}
}

func TestFormValidator_Name(t *testing.T) {
	v := newTestValidator(t)

	assert.True(t, v.Validate("Al", entity.FieldName).IsValid)
	assert.True(t, v.Validate("Юя", entity.FieldName).IsValid)

	result := v.Validate("  A  ", entity.FieldName)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{MsgNameMinLength}, result.Messages)
}

func TestFormValidator_Comment(t *testing.T) {
	v := newTestValidator(t)

	empty := v.Validate("   ", entity.FieldComment)
	assert.False(t, empty.IsValid)
	assert.Equal(t, []string{MsgCommentEmpty, MsgCommentTooShort}, empty.Messages)

	short := v.Validate("ok", entity.FieldComment)
	assert.Equal(t, []string{MsgCommentTooShort}, short.Messages)

	assert.True(t, v.Validate("Great sofa", entity.FieldComment).IsValid)
	assert.True(t, v.Validate(strings.Repeat("x", 500), entity.FieldComment).IsValid)

	long := v.Validate(strings.Repeat("x", 501), entity.FieldComment)
	assert.Equal(t, []string{MsgCommentTooLong}, long.Messages)
}

func TestFormValidator_UnknownField(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate("anything", entity.FieldKind("address"))
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{MsgUnsupportedField}, result.Messages)
}
