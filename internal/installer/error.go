package installer

import "errors"

var (
	ErrRuntimeUnavailable  = errors.New("unable to init VR runtime")
	ErrRegistryUnavailable = errors.New("failed to access VR applications")
	ErrRegistrationFailed  = errors.New("failed to install application")
)

// ExitCode maps the outcome of a workflow to a process exit status. Launch
// failures never reach here as errors, so they exit 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
