package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/eagraf/overlay-installer/internal/constants"
	"github.com/eagraf/overlay-installer/internal/vr"
	"github.com/eagraf/overlay-installer/internal/vr/vrtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(runtime vr.Runtime, args ...string) (int, string, string) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, stdout, stderr, runtime)
	return code, stdout.String(), stderr.String()
}

func TestRun_Install(t *testing.T) {
	runtime := vrtest.NewRuntime()

	// Arguments other than flags are accepted and ignored.
	code, stdout, stderr := runCmd(runtime, "ignored", "arguments")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Application installed successfully!\n", stdout)
	assert.Empty(t, stderr)

	require.Len(t, runtime.Manifests, 1)
	assert.True(t, filepath.IsAbs(runtime.Manifests[0]))
	assert.Equal(t, constants.DefaultManifestPath, filepath.Base(runtime.Manifests[0]))
	assert.Equal(t, []string{constants.DefaultAppKey}, runtime.Launches)
	assert.Equal(t, 1, runtime.Shutdowns)
}

func TestRun_AlreadyInstalled(t *testing.T) {
	runtime := vrtest.NewRuntime("org.example.overlay")

	code, stdout, _ := runCmd(runtime, "--app-key", "org.example.overlay")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Application already installed\n", stdout)
	assert.Empty(t, runtime.Manifests)
	assert.Equal(t, []string{"org.example.overlay"}, runtime.Launches)
}

func TestRun_ExitCodes(t *testing.T) {
	testCases := []struct {
		name       string
		setup      func(r *vrtest.Runtime)
		wantCode   int
		wantStderr string
	}{
		{
			name:       "init failure",
			setup:      func(r *vrtest.Runtime) { r.InitErr = &vr.InitError{Code: 108, Description: "Hmd Not Found (108)"} },
			wantCode:   1,
			wantStderr: "unable to init VR runtime: Hmd Not Found (108)\n",
		},
		{
			name:       "registry unavailable",
			setup:      func(r *vrtest.Runtime) { r.NoApplications = true },
			wantCode:   1,
			wantStderr: "Failed to access VR applications!\n",
		},
		{
			name: "registration failure",
			setup: func(r *vrtest.Runtime) {
				r.FailRegistration = &vr.ApplicationError{Code: 103, Name: "VRApplicationError_InvalidManifest"}
			},
			wantCode:   1,
			wantStderr: "Failed to install application: 103 (VRApplicationError_InvalidManifest)\n",
		},
		{
			name:       "launch failure",
			setup:      func(r *vrtest.Runtime) { r.FailLaunch = &vr.ApplicationError{Code: 101} },
			wantCode:   0,
			wantStderr: "Failed launching overlay: 101\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runtime := vrtest.NewRuntime()
			tc.setup(runtime)

			code, _, stderr := runCmd(runtime)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantStderr, stderr)
		})
	}
}

func TestRun_Status(t *testing.T) {
	runtime := vrtest.NewRuntime(constants.DefaultAppKey)

	code, stdout, _ := runCmd(runtime, "status")
	assert.Equal(t, 0, code)
	assert.Equal(t, constants.DefaultAppKey+" is installed\n", stdout)

	code, stdout, _ = runCmd(runtime, "status", "--app-key", "org.example.other")
	assert.Equal(t, 0, code)
	assert.Equal(t, "org.example.other is not installed\n", stdout)

	assert.Empty(t, runtime.Manifests)
	assert.Empty(t, runtime.Launches)
	assert.Equal(t, 2, runtime.Shutdowns)
}

func TestRun_Validate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.vrmanifest")
	err := os.WriteFile(path, []byte(`{
		"source": "builtin",
		"applications": [{
			"app_key": "org.mon-ouie.mpris-openvr-overlay",
			"launch_type": "binary",
			"binary_path_linux": "mpris-openvr-overlay",
			"is_dashboard_overlay": true
		}]
	}`), 0600)
	require.NoError(t, err)

	runtime := vrtest.NewRuntime()
	code, stdout, stderr := runCmd(runtime, "validate", "--manifest", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "declares org.mon-ouie.mpris-openvr-overlay (binary)")
	assert.Empty(t, stderr)
	assert.Equal(t, 0, runtime.Inits)

	code, _, stderr = runCmd(runtime, "validate", "--manifest", path, "--app-key", "org.example.other")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "app key not declared in manifest")
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCmd(vrtest.NewRuntime(), "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, version+"\n", stdout)
}

func TestRun_BadFlags(t *testing.T) {
	runtime := vrtest.NewRuntime()

	code, _, stderr := runCmd(runtime, "--no-such-flag")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown flag")

	code, _, _ = runCmd(runtime, "--log-level", "loud")
	assert.Equal(t, 1, code)
	assert.Equal(t, 0, runtime.Inits)
}
