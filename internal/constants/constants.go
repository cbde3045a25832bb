package constants

const (
	// Registry key of the MPRIS dashboard overlay.
	DefaultAppKey       = "org.mon-ouie.mpris-openvr-overlay"
	DefaultManifestPath = "manifest.vrmanifest"
	DefaultLogLevel     = "info"

	// Config file lookup
	ConfigName = "overlay-installer"
	ConfigType = "yml"
	ConfigDir  = "$HOME/.config/overlay-installer"

	EnvPrefix = "OVERLAY_INSTALLER"
)
