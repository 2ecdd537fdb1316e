// Package errs holds the error taxonomy shared by the store, the services and the HTTP layer.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIdentity     = errors.New("invalid identity number")
	ErrNotFound            = errors.New("record not found")
	ErrUniqueViolation     = errors.New("duplicate value")
	ErrForeignKeyViolation = errors.New("invalid reference")
	ErrInternal            = errors.New("internal error")
)

// ConstraintError is returned by the store when a write breaks a unique or foreign-key constraint.
// Kind is ErrUniqueViolation or ErrForeignKeyViolation.
type ConstraintError struct {
	Kind       error
	Constraint string
	Field      string
}

func (e *ConstraintError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	return e.Kind.Error()
}

func (e *ConstraintError) Unwrap() error { return e.Kind }

// Unique builds a unique-violation error for the given constraint and field.
func Unique(constraint, field string) *ConstraintError {
	return &ConstraintError{Kind: ErrUniqueViolation, Constraint: constraint, Field: field}
}

// ForeignKey builds a foreign-key-violation error for the given constraint and field.
func ForeignKey(constraint, field string) *ConstraintError {
	return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: constraint, Field: field}
}

// FieldOf returns the conflicting field carried by err, if any.
func FieldOf(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}
