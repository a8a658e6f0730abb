package location

import (
	"fmt"
	"time"
)

// Reason classifies why a geolocation attempt failed.
type Reason string

const (
	ReasonDenied      Reason = "denied"
	ReasonUnavailable Reason = "unavailable"
	ReasonTimeout     Reason = "timeout"
	ReasonUnsupported Reason = "unsupported"
)

// GeolocationError is a failed attempt to read the device position. It is
// always recoverable: callers fall back to the default location.
type GeolocationError struct {
	Reason Reason
}

func (e *GeolocationError) Error() string {
	return fmt.Sprintf("geolocation failed: %s", e.Reason)
}

// Source provides the device position. maxAge bounds how stale a cached fix
// may be; zero demands a fresh fix. timeout bounds how long to wait.
type Source interface {
	Current(timeout, maxAge time.Duration) (latitude, longitude float64, err error)
}

// UnsupportedSource is the Source for environments without a positioning
// capability. Every call fails with ReasonUnsupported.
type UnsupportedSource struct{}

func (UnsupportedSource) Current(timeout, maxAge time.Duration) (float64, float64, error) {
	return 0, 0, &GeolocationError{Reason: ReasonUnsupported}
}

// StaticSource always reports a fixed position.
type StaticSource struct {
	Latitude  float64
	Longitude float64
}

func (s StaticSource) Current(timeout, maxAge time.Duration) (float64, float64, error) {
	return s.Latitude, s.Longitude, nil
}
