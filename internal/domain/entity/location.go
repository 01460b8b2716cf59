package entity

import "time"

// Fix is one raw coordinate reading delivered by the location subsystem.
// Accuracy is the horizontal uncertainty radius in meters; lower is more
// precise.
type Fix struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationSample is one accepted fix persisted under an identity. Samples
// are immutable once minted: the filter creates them on acceptance and the
// sync store owns them until they are queried back as part of a daily path.
type LocationSample struct {
	ID         string    `json:"id"`         // Generated at capture time, unique per sample.
	IdentityID string    `json:"user_id"`    // Owning identity.
	Latitude   float64   `json:"latitude"`   // Coordinate of the fix.
	Longitude  float64   `json:"longitude"`  // Coordinate of the fix.
	Timestamp  time.Time `json:"timestamp"`  // Capture time of the underlying fix.
	Accuracy   float64   `json:"accuracy"`   // Horizontal accuracy radius in meters.
}

// AuthorizationStatus mirrors the OS-level location permission state. It is
// owned by the platform, not by this engine: the negotiator only reads it,
// and it may lag the permission dialog by a perceptible delay.
type AuthorizationStatus string

const (
	// AuthorizationNotDetermined means the user has not answered the
	// permission prompt yet.
	AuthorizationNotDetermined AuthorizationStatus = "not_determined"
	// AuthorizationGranted covers both always and while-in-use grants.
	AuthorizationGranted AuthorizationStatus = "granted"
	// AuthorizationDenied covers explicit denial and restricted state.
	AuthorizationDenied AuthorizationStatus = "denied"
)

// Valid reports whether s is one of the known authorization states.
func (s AuthorizationStatus) Valid() bool {
	switch s {
	case AuthorizationNotDetermined, AuthorizationGranted, AuthorizationDenied:
		return true
	}

	return false
}
