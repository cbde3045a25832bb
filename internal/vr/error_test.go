package vr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitError(t *testing.T) {
	err := &InitError{Code: 108, Description: "Hmd Not Found (108)"}
	assert.Equal(t, "Hmd Not Found (108)", err.Error())

	err = &InitError{Code: 1, Err: ErrRuntimeNotSupported}
	assert.Equal(t, ErrRuntimeNotSupported.Error(), err.Error())
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrRuntimeNotSupported))

	err = &InitError{Code: 110}
	assert.Equal(t, "init error 110", err.Error())
}

func TestApplicationError(t *testing.T) {
	err := &ApplicationError{Code: 103, Name: "VRApplicationError_InvalidManifest"}
	assert.Equal(t, "103 (VRApplicationError_InvalidManifest)", err.Error())

	var appErr *ApplicationError
	wrapped := fmt.Errorf("failed: %w", &ApplicationError{Code: 105})
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "105", appErr.Error())
}

func TestApplicationTypeString(t *testing.T) {
	assert.Equal(t, "background", ApplicationBackground.String())
	assert.Equal(t, "overlay", ApplicationOverlay.String())
	assert.Equal(t, "unknown", ApplicationType(42).String())
}
