//go:build !openvr || !cgo

package main

import (
	"testing"

	"github.com/eagraf/overlay-installer/internal/vr/openvr"
	"github.com/stretchr/testify/assert"
)

func TestRun_WithoutNativeRuntime(t *testing.T) {
	code, stdout, stderr := runCmd(openvr.NewRuntime())
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unable to init VR runtime")
}
