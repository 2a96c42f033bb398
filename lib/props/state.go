package props

// State is the lifecycle position of a Store. A Store starts out
// Unconfigured, passes through Bootstrapping inside Initialize, and
// remains Loaded for the rest of its life. There is no transition
// back; a second Initialize restarts the cycle at Bootstrapping.
type State int

const (
	// StateUnconfigured means Initialize has never been called.
	// No mutation is legal and Get only ever returns "".
	StateUnconfigured State = iota

	// StateBootstrapping covers the window inside Initialize where
	// the DefaultsProvider declares its keys. Only SetDefault is
	// legal here.
	StateBootstrapping

	// StateLoaded means both backing files have been read into
	// memory. Defaults are frozen; only SetValue is legal.
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateBootstrapping:
		return "bootstrapping"
	case StateLoaded:
		return "loaded"
	default:
		return "invalid"
	}
}
