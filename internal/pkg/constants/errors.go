package constants

import (
	"errors"
	"fmt"
	"net/http"
)

// CodedError is an error carrying the HTTP status it should be rendered with.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrInvalidPincode    = NewCodedError("please enter a valid 6-digit pincode", http.StatusBadRequest)
	ErrPincodeNotFound   = NewCodedError("no constituency found for pincode", http.StatusNotFound)
	ErrInvalidSeatChoice = NewCodedError("chosen assembly seat does not cover this pincode", http.StatusBadRequest)
	ErrNotFound          = NewCodedError("no complaint found with this id", http.StatusNotFound)
	ErrDBNotFound        = NewCodedError("record not found", http.StatusNotFound)
	ErrMalformedRecord   = errors.New("malformed record")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Code() int {
	return http.StatusUnprocessableEntity
}
