package enums

// SessionStatus is the server verdict returned by the check-status endpoint.
type SessionStatus string

const (
	SessionLoggedOn  SessionStatus = "loggedOn"
	SessionLoggedOff SessionStatus = "loggedOff"
)

// IsValid reports whether the verdict is one the server is known to emit.
func (s SessionStatus) IsValid() bool {
	return s == SessionLoggedOn || s == SessionLoggedOff
}
