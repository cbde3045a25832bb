//go:build !openvr || !cgo

package openvr

import "github.com/eagraf/overlay-installer/internal/vr"

func (r *Runtime) Init(mode vr.ApplicationType) (vr.Session, error) {
	return nil, &vr.InitError{Code: initErrorNotSupported, Err: vr.ErrRuntimeNotSupported}
}
