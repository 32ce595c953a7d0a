package app

// DebugMode controls instance-level introspection. When true, applications
// capture their root instance after mounting and announce lifecycle events to
// the devtools notifier. When false, neither happens and Instance stays nil.
var DebugMode = true

// SetDebugMode enables or disables instance-level introspection.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
