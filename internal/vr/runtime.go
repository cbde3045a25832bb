package vr

// ApplicationType is the mode a process connects to the runtime in. Values
// match the runtime's own enum.
type ApplicationType int

const (
	ApplicationOther      ApplicationType = 0
	ApplicationScene      ApplicationType = 1
	ApplicationOverlay    ApplicationType = 2
	ApplicationBackground ApplicationType = 3
	ApplicationUtility    ApplicationType = 4
)

func (t ApplicationType) String() string {
	switch t {
	case ApplicationOther:
		return "other"
	case ApplicationScene:
		return "scene"
	case ApplicationOverlay:
		return "overlay"
	case ApplicationBackground:
		return "background"
	case ApplicationUtility:
		return "utility"
	}
	return "unknown"
}

// Runtime is a client for the VR runtime service.
type Runtime interface {
	// Init connects to the runtime. A nil error means the returned Session
	// must be shut down exactly once.
	Init(mode ApplicationType) (Session, error)
}

// Session is a live connection to the runtime.
type Session interface {
	// Applications returns the runtime's application registry.
	Applications() (Applications, error)
	// Shutdown releases the connection.
	Shutdown()
}

// Applications is the runtime's application registry.
type Applications interface {
	IsApplicationInstalled(appKey string) bool
	// AddApplicationManifest registers the manifest at the given absolute path.
	AddApplicationManifest(manifestPath string) error
	LaunchDashboardOverlay(appKey string) error
}
