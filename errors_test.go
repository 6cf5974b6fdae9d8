package planar

import (
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	err := errors.New("some error")
	if IsNotFound(err) {
		t.Log("custom error type NotFound is wrongly recognized")
		t.Fail()
	}

	err = asNotFound(err)
	if !IsNotFound(err) {
		t.Log("custom error type NotFound is not recognized")
		t.Fail()
	}
}

func TestIsInvalidParameter(t *testing.T) {
	err := errors.New("some error")
	if IsInvalidParameter(err) {
		t.Log("custom error type InvalidParameter is wrongly recognized")
		t.Fail()
	}

	err = NewInvalidParameter("bad value %v", 123)
	if !IsInvalidParameter(err) {
		t.Log("custom error type InvalidParameter is not recognized")
		t.Fail()
	}
	if err.Error() != "bad value 123" {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	err := errors.New("inner")
	wrapped := Wrap(err, "context %v", 1)
	if wrapped.Error() != "context 1: inner" {
		t.Errorf("unexpected wrapped message: %q", wrapped.Error())
	}
}
