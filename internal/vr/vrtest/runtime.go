// Package vrtest provides an in-memory VR runtime whose application registry
// outlives individual sessions.
package vrtest

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/eagraf/overlay-installer/internal/vr"
)

var ErrNotAbsolute = errors.New("manifest path is not absolute")

// Runtime records every call made against it. Set the Fail* fields to inject
// errors; ManifestKey maps a manifest path to the app key it declares.
type Runtime struct {
	InitErr          error
	ApplicationsErr  error
	FailRegistration error
	FailLaunch       error
	NoApplications   bool
	ManifestKey      map[string]string

	Inits     int
	Shutdowns int
	Manifests []string
	Launches  []string

	installed map[string]bool
	*sync.Mutex
}

var _ vr.Runtime = &Runtime{}

func NewRuntime(installed ...string) *Runtime {
	r := &Runtime{
		ManifestKey: make(map[string]string),
		installed:   make(map[string]bool),
		Mutex:       &sync.Mutex{},
	}
	for _, key := range installed {
		r.installed[key] = true
	}
	return r
}

func (r *Runtime) Init(mode vr.ApplicationType) (vr.Session, error) {
	r.Lock()
	defer r.Unlock()

	r.Inits++
	if r.InitErr != nil {
		return nil, r.InitErr
	}
	return &session{runtime: r}, nil
}

// Installed reports whether appKey is in the registry.
func (r *Runtime) Installed(appKey string) bool {
	r.Lock()
	defer r.Unlock()
	return r.installed[appKey]
}

type session struct {
	runtime *Runtime
}

func (s *session) Applications() (vr.Applications, error) {
	if s.runtime.ApplicationsErr != nil {
		return nil, s.runtime.ApplicationsErr
	}
	if s.runtime.NoApplications {
		return nil, nil
	}
	return &applications{runtime: s.runtime}, nil
}

func (s *session) Shutdown() {
	s.runtime.Lock()
	defer s.runtime.Unlock()
	s.runtime.Shutdowns++
}

type applications struct {
	runtime *Runtime
}

func (a *applications) IsApplicationInstalled(appKey string) bool {
	return a.runtime.Installed(appKey)
}

func (a *applications) AddApplicationManifest(manifestPath string) error {
	r := a.runtime
	r.Lock()
	defer r.Unlock()

	r.Manifests = append(r.Manifests, manifestPath)
	if r.FailRegistration != nil {
		return r.FailRegistration
	}
	if !filepath.IsAbs(manifestPath) {
		return ErrNotAbsolute
	}
	if key, ok := r.ManifestKey[manifestPath]; ok {
		r.installed[key] = true
	}
	return nil
}

func (a *applications) LaunchDashboardOverlay(appKey string) error {
	r := a.runtime
	r.Lock()
	defer r.Unlock()

	r.Launches = append(r.Launches, appKey)
	return r.FailLaunch
}
