package planar

import (
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %v", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(e error) error {
	return notFound{fmt.Sprintf("Not found: %v", e)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	_, ok := err.(notFound)
	return ok
}

type invalidParameter struct {
	message string
}

func (i invalidParameter) Error() string {
	return i.message
}

// NewInvalidParameter creates an error from the given format string.
// It is used for parameters outside their allowed domain,
// e.g. an unsupported reflection axis.
func NewInvalidParameter(msg string, v ...interface{}) error {
	return invalidParameter{fmt.Sprintf(msg, v...)}
}

// IsInvalidParameter checks if the given error is about an invalid parameter.
func IsInvalidParameter(err error) bool {
	_, ok := err.(invalidParameter)
	return ok
}
