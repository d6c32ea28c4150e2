// Package apperrors provides the structured error taxonomy used by the battle core.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an error that did not originate in this package.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidArgument marks malformed input: negative amounts or indices,
	// unknown enum values, or an operation issued in the wrong session state.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeUnknownAction marks a catalog index that is out of range.
	CodeUnknownAction Code = "UNKNOWN_ACTION"

	// CodeInsufficientResource tags an intent rejected for lack of mana or
	// potions. The resolver reports it on the outcome, never as a returned error.
	CodeInsufficientResource Code = "INSUFFICIENT_RESOURCE"
)

// Error is a domain error carrying a code and optional metadata.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
}

// Sentinels for use with errors.Is. Matching is by code only.
var (
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrUnknownAction   = &Error{Code: CodeUnknownAction, Message: "unknown action"}
)

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithMetadata returns a copy of the error with an extra metadata entry.
func (e *Error) WithMetadata(key, value string) *Error {
	md := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	return &Error{Code: e.Code, Message: e.Message, Metadata: md}
}

func (e *Error) Error() string {
	if len(e.Metadata) == 0 {
		return string(e.Code) + ": " + e.Message
	}
	keys := make([]string, 0, len(e.Metadata))
	for k := range e.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+e.Metadata[k])
	}
	return string(e.Code) + ": " + e.Message + " (" + strings.Join(pairs, ", ") + ")"
}

// Is reports whether target is a domain error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
