// Package openvr connects to SteamVR through libopenvr_api. Build with the
// "openvr" tag and cgo enabled to link the native runtime; other builds
// report the runtime as unavailable.
package openvr

import "github.com/eagraf/overlay-installer/internal/vr"

// Interface version of the application registry function table.
const applicationsVersion = "FnTable:IVRApplications_007"

// Init error codes the adapter produces itself.
const (
	initErrorNotSupported  = 2
	initErrorInterfaceNull = 105
)

// Runtime is the OpenVR client.
type Runtime struct{}

var _ vr.Runtime = &Runtime{}

func NewRuntime() *Runtime {
	return &Runtime{}
}
