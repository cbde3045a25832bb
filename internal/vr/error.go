package vr

import (
	"errors"
	"fmt"
)

var ErrRuntimeNotSupported = errors.New("built without VR runtime support")

// InitError is returned when a connection to the runtime cannot be made.
type InitError struct {
	Code        int
	Description string
	Err         error
}

func (e *InitError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("init error %d", e.Code)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// ApplicationError is a raw error code returned by the application registry.
type ApplicationError struct {
	Code int
	Name string
}

func (e *ApplicationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%d (%s)", e.Code, e.Name)
	}
	return fmt.Sprintf("%d", e.Code)
}
