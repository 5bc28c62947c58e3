package domain

import (
	"errors"
	"fmt"
)

type ErrCode string

const (
	CodeValidation         ErrCode = "validation_error"
	CodeNotFound           ErrCode = "not_found"
	CodeForbidden          ErrCode = "forbidden"
	CodeUnauthorized       ErrCode = "unauthorized"
	CodeInvalidCredentials ErrCode = "invalid_credentials"
	CodeRateLimited        ErrCode = "rate_limited"
	CodeInfrastructure     ErrCode = "infrastructure_error"
)

type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if len(e.Meta) > 0 {
		msg = fmt.Sprintf("%s (%v)", msg, e.Meta)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *AppError) Unwrap() error { return e.Cause }

func ErrValidation(msg string) error { return &AppError{Code: CodeValidation, Message: msg} }
func ErrValidationMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeValidation, Message: msg, Meta: meta}
}
func ErrNotFound(msg string) error     { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrForbidden(msg string) error    { return &AppError{Code: CodeForbidden, Message: msg} }
func ErrUnauthorized(msg string) error { return &AppError{Code: CodeUnauthorized, Message: msg} }
func ErrRateLimited(msg string) error  { return &AppError{Code: CodeRateLimited, Message: msg} }

// ErrInvalidCredentials is shared by every login failure so callers cannot
// tell an unknown email from a wrong password.
func ErrInvalidCredentials() error {
	return &AppError{Code: CodeInvalidCredentials, Message: "invalid credentials"}
}

func ErrInfrastructure(msg string, cause error) error {
	return &AppError{Code: CodeInfrastructure, Message: msg, Cause: cause}
}

// Is reports whether err carries the given code.
func Is(err error, code ErrCode) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
