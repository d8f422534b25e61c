package service

import "textura/internal/domain/entity"

// FormValidator checks a single text value against the rules of its field kind.
// It is pure: no state, no I/O, and violations are returned as data.
type FormValidator interface {
	Validate(text string, kind entity.FieldKind) entity.ValidationResult
}
