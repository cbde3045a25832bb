// Package installer registers an application manifest with the VR runtime
// and launches the application's dashboard overlay.
package installer

import (
	"fmt"
	"path/filepath"

	"github.com/eagraf/overlay-installer/internal/constants"
	"github.com/eagraf/overlay-installer/internal/logging"
	"github.com/eagraf/overlay-installer/internal/vr"
)

type Installer struct {
	runtime      vr.Runtime
	appKey       string
	manifestPath string
	log          *logging.Logger
}

type Option func(*Installer)

func WithAppKey(appKey string) Option {
	return func(i *Installer) {
		i.appKey = appKey
	}
}

// WithManifestPath sets the manifest location. Relative paths are resolved
// against the working directory when the manifest is registered.
func WithManifestPath(path string) Option {
	return func(i *Installer) {
		i.manifestPath = path
	}
}

func WithLogger(log *logging.Logger) Option {
	return func(i *Installer) {
		i.log = log
	}
}

func New(runtime vr.Runtime, opts ...Option) *Installer {
	i := &Installer{
		runtime:      runtime,
		appKey:       constants.DefaultAppKey,
		manifestPath: constants.DefaultManifestPath,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.log == nil {
		i.log = logging.Default()
	}
	return i
}

// Result describes a workflow run that reached the launch step.
type Result struct {
	AppKey string
	// Absolute manifest path, set only when registration was attempted.
	ManifestPath     string
	AlreadyInstalled bool
	Registered       bool
	Launched         bool
	LaunchErr        error
}

// withApplications opens a background session, hands its application
// registry to fn and releases the session once, on every path after Init
// succeeds.
func (i *Installer) withApplications(fn func(vr.Applications) error) error {
	i.log.Debug().Str("mode", vr.ApplicationBackground.String()).Msg("connecting to VR runtime")
	session, err := i.runtime.Init(vr.ApplicationBackground)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRuntimeUnavailable, err)
	}
	defer func() {
		i.log.Debug().Msg("shutting down VR runtime")
		session.Shutdown()
	}()

	apps, err := session.Applications()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}
	if apps == nil {
		return ErrRegistryUnavailable
	}
	return fn(apps)
}

// Run installs the application if the registry does not know it yet, then
// launches its dashboard overlay. A failed launch is reported but is not an
// error.
func (i *Installer) Run() (*Result, error) {
	var res *Result
	err := i.withApplications(func(apps vr.Applications) error {
		var err error
		res, err = i.installAndLaunch(apps)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (i *Installer) installAndLaunch(apps vr.Applications) (*Result, error) {
	res := &Result{AppKey: i.appKey}
	if apps.IsApplicationInstalled(i.appKey) {
		res.AlreadyInstalled = true
		i.log.Info("Application already installed")
	} else {
		path, err := filepath.Abs(i.manifestPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
		}
		res.ManifestPath = path

		i.log.Debug().Str("app_key", i.appKey).Str("manifest", path).Msg("registering manifest")
		if err := apps.AddApplicationManifest(path); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
		}
		res.Registered = true
		i.log.Success("Application installed successfully!")
	}

	if err := apps.LaunchDashboardOverlay(i.appKey); err != nil {
		res.LaunchErr = err
		i.log.Errorf("Failed launching overlay: %s", err)
		return res, nil
	}
	res.Launched = true
	i.log.Debug().Str("app_key", i.appKey).Msg("dashboard overlay launched")

	return res, nil
}

// Status reports whether the application is registered without changing the
// registry.
func (i *Installer) Status() (bool, error) {
	var installed bool
	err := i.withApplications(func(apps vr.Applications) error {
		installed = apps.IsApplicationInstalled(i.appKey)
		return nil
	})
	return installed, err
}
