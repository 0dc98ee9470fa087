package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain error that knows which HTTP status it maps to.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so cloned messages still compare equal to their template.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors. Messages are the plain-text bodies clients receive.
var (
	ErrUserNotFound         = New("USER_NOT_FOUND", http.StatusNotFound, "")
	ErrUsernameUnknown      = New("USERNAME_UNKNOWN", http.StatusBadRequest, "Username does not exist.")
	ErrUsernameAndEmailUsed = New("USERNAME_AND_EMAIL_TAKEN", http.StatusBadRequest, "Username and Email already taken.")
	ErrUsernameTaken        = New("USERNAME_TAKEN", http.StatusBadRequest, "Username already taken.")
	ErrEmailTaken           = New("EMAIL_TAKEN", http.StatusBadRequest, "Email already taken.")
	ErrSubjectExists        = New("SUBJECT_EXISTS", http.StatusBadRequest, "Subject name already exists.")
	ErrSubjectNotFound      = New("SUBJECT_NOT_FOUND", http.StatusBadRequest, "Subject does not exist.")
	ErrNewSubjectExists     = New("NEW_SUBJECT_EXISTS", http.StatusBadRequest, "New subject name already exists.")
	ErrValidation           = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInvalidStudyNote     = New("VALIDATION_ERROR", http.StatusBadRequest, "Invalid study note payload.")
	ErrLocked               = New("USER_LOCKED", http.StatusConflict, "User is being modified, retry later.")
	ErrInternal             = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Internal wraps a store or infrastructure failure.
func Internal(err error, message string) *Error {
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, message)
}
