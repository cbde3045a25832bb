//go:build openvr && cgo

package openvr

/*
#cgo LDFLAGS: -lopenvr_api
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
#include <openvr/openvr_capi.h>

static intptr_t overlay_vr_init(int app_type, int *err) {
	EVRInitError e = EVRInitError_VRInitError_None;
	intptr_t token = VR_InitInternal(&e, (EVRApplicationType)app_type);
	*err = (int)e;
	return token;
}

static const char *overlay_vr_init_error_description(int err) {
	return VR_GetVRInitErrorAsEnglishDescription((EVRInitError)err);
}

static intptr_t overlay_vr_applications(const char *version, int *err) {
	EVRInitError e = EVRInitError_VRInitError_None;
	intptr_t table = VR_GetGenericInterface(version, &e);
	*err = (int)e;
	return table;
}

static bool overlay_apps_is_installed(intptr_t table, char *app_key) {
	return ((struct VR_IVRApplications_FnTable *)table)->IsApplicationInstalled(app_key);
}

static int overlay_apps_add_manifest(intptr_t table, char *path) {
	return (int)((struct VR_IVRApplications_FnTable *)table)->AddApplicationManifest(path, false);
}

static int overlay_apps_launch_dashboard_overlay(intptr_t table, char *app_key) {
	return (int)((struct VR_IVRApplications_FnTable *)table)->LaunchDashboardOverlay(app_key);
}

static const char *overlay_apps_error_name(intptr_t table, int err) {
	return ((struct VR_IVRApplications_FnTable *)table)->GetApplicationsErrorNameFromEnum((EVRApplicationError)err);
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/eagraf/overlay-installer/internal/vr"
)

func (r *Runtime) Init(mode vr.ApplicationType) (vr.Session, error) {
	var code C.int
	C.overlay_vr_init(C.int(mode), &code)
	if code != 0 {
		desc := C.GoString(C.overlay_vr_init_error_description(code))
		return nil, &vr.InitError{
			Code:        int(code),
			Description: fmt.Sprintf("%s (%d)", desc, int(code)),
		}
	}
	return &session{}, nil
}

type session struct{}

func (s *session) Applications() (vr.Applications, error) {
	version := C.CString(applicationsVersion)
	defer C.free(unsafe.Pointer(version))

	var code C.int
	table := C.overlay_vr_applications(version, &code)
	if code != 0 {
		return nil, &vr.InitError{
			Code:        int(code),
			Description: C.GoString(C.overlay_vr_init_error_description(code)),
		}
	}
	if table == 0 {
		return nil, &vr.InitError{Code: initErrorInterfaceNull, Description: "applications interface is null"}
	}
	return &applications{table: table}, nil
}

func (s *session) Shutdown() {
	C.VR_ShutdownInternal()
}

type applications struct {
	table C.intptr_t
}

func (a *applications) IsApplicationInstalled(appKey string) bool {
	key := C.CString(appKey)
	defer C.free(unsafe.Pointer(key))
	return bool(C.overlay_apps_is_installed(a.table, key))
}

func (a *applications) AddApplicationManifest(manifestPath string) error {
	path := C.CString(manifestPath)
	defer C.free(unsafe.Pointer(path))
	return a.applicationError(C.overlay_apps_add_manifest(a.table, path))
}

func (a *applications) LaunchDashboardOverlay(appKey string) error {
	key := C.CString(appKey)
	defer C.free(unsafe.Pointer(key))
	return a.applicationError(C.overlay_apps_launch_dashboard_overlay(a.table, key))
}

func (a *applications) applicationError(code C.int) error {
	if code == 0 {
		return nil
	}
	return &vr.ApplicationError{
		Code: int(code),
		Name: C.GoString(C.overlay_apps_error_name(a.table, code)),
	}
}
