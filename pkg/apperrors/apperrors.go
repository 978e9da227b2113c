// Package apperrors defines the error taxonomy shared by the REST
// boundary and the realtime gateway: validation failures, missing
// records and authentication failures. All of them are per-request
// errors reported back to the single requester, never fatal.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports one or more missing or malformed fields, or
// an otherwise invalid request. The message names the offending fields
// so the client can surface it as-is in a toast.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) == 0 {
		return "requête invalide"
	}
	return fmt.Sprintf("champs requis manquants: %s", strings.Join(e.Fields, ", "))
}

// NewValidation builds a ValidationError for the given field names.
func NewValidation(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewInvalid builds a ValidationError with a verbatim message, for
// rejections that are not about a single field.
func NewInvalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports a mutation whose target id does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s introuvable: %s", e.Entity, e.ID)
}

// NewNotFound builds a NotFoundError.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrBadCredentials is returned on login with a wrong email/password
// or username/password pair.
var ErrBadCredentials = errors.New("identifiants invalides")
