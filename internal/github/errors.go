package github

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed contents request.
type ErrorKind int

const (
	// KindFetch means the request could not be sent or the body not read.
	KindFetch ErrorKind = iota
	// KindNotFound means the repository, path, or ref does not exist.
	KindNotFound
	// KindStatus means the API answered with another non-2xx status.
	KindStatus
	// KindDecode means the body was not a JSON array of entries.
	KindDecode
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindFetch:
		return "Fetch"
	case KindNotFound:
		return "NotFound"
	case KindStatus:
		return "Status"
	case KindDecode:
		return "Decode"
	default:
		return "Unknown"
	}
}

// Error is returned by Client.List.
type Error struct {
	Kind   ErrorKind
	URL    string
	Status int
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("github contents [%s] %s", e.Kind, e.URL)
	if e.Status != 0 {
		msg += fmt.Sprintf(": status %d", e.Status)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Cause }

// IsNotFound reports whether err is a NotFound contents error.
func IsNotFound(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == KindNotFound
}
