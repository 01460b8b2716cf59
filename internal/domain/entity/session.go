package entity

// TrackingState is the lifecycle state of the per-run tracking session.
type TrackingState string

const (
	// TrackingIdle is the initial, quiescent state.
	TrackingIdle TrackingState = "idle"
	// TrackingAuthorizing means a permission negotiation is in flight.
	TrackingAuthorizing TrackingState = "authorizing"
	// TrackingActive means the fix subscription is live.
	TrackingActive TrackingState = "tracking"
	// TrackingStopped means tracking was halted; re-entrant via start.
	TrackingStopped TrackingState = "stopped"
	// TrackingError means the last start attempt failed; resolves to idle.
	TrackingError TrackingState = "error"
)

// TrackingSession is the observable snapshot of the single per-run tracking
// session. The tracking flag is true only while the authorization status is
// granted; any transition away from granted forces it false within one
// update cycle. LastError holds only the most recent error (no queue).
type TrackingSession struct {
	State         TrackingState       `json:"state"`
	Authorization AuthorizationStatus `json:"authorization"`
	Tracking      bool                `json:"tracking"`
	LastLocation  *Fix                `json:"last_location,omitempty"`
	LastError     string              `json:"last_error,omitempty"`
}
