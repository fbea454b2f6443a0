package service

import (
	"errors"
	"fmt"
)

// Error codes carried by MyError and reported in the JSON error envelope.
const (
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound is returned by stores for a service id with no record.
	ErrEntityNotFound = "entity_not_found"
	ErrBadParameter   = "bad_parameter"
)

// MyError is the registry's coded error. Code and Message are serialized; Inner stays server side.
type MyError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Inner   error  `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// coded keeps an already-coded inner error as is, so the first classification wins while wrapping.
func coded(code string, message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(code, message, inner)
}

func NewInternalServerError(message string, inner error) *MyError {
	return coded(ErrInternalServerError, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	return coded(ErrBadParameter, message, inner)
}

// NewServiceNotFoundError is what Touch and Get return for an id the store does not hold.
func NewServiceNotFoundError(serviceID string) *MyError {
	return NewMyError(ErrEntityNotFound, fmt.Sprintf("service %q is not registered", serviceID), nil)
}

func (e MyError) Error() string {
	if e.Inner == nil {
		return e.Code + " " + e.Message
	}
	return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
}

func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError finds the first MyError in err's chain, or nil.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// ToMyErrorCode returns the code of the first MyError in err's chain, or "".
func ToMyErrorCode(err error) string {
	if e := ToMyError(err); e != nil {
		return e.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	return code != "" && ToMyErrorCode(err) == code
}

func IsInternalServerError(err error) bool { return IsMyError(err, ErrInternalServerError) }

func IsEntityNotFoundError(err error) bool { return IsMyError(err, ErrEntityNotFound) }

func IsBadParameterError(err error) bool { return IsMyError(err, ErrBadParameter) }
