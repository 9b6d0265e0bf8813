package domain

// FrameworkVersion identifies the framework major version a strategy handles.
type FrameworkVersion int

const (
	// FrameworkUnknown means no strategy matched.
	FrameworkUnknown FrameworkVersion = iota
	// FrameworkRails3 covers Rails 3.x applications.
	FrameworkRails3
	// FrameworkRails4 covers Rails 4.0.x applications.
	FrameworkRails4
)

// String returns a short identifier for the framework version.
func (v FrameworkVersion) String() string {
	switch v {
	case FrameworkRails3:
		return "rails3"
	case FrameworkRails4:
		return "rails4"
	default:
		return "unknown"
	}
}
