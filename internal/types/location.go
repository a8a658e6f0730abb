package types

// FallbackLabel is shown when no address fields are available.
const FallbackLabel = "your area"

// Location is the resolved geographic reference point used to scope searches.
type Location struct {
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	ZipCode   *string  `json:"zipCode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Label     string   `json:"label"`
}

// NewLocation builds a Location with its display label derived from the
// available address fields. The label is never empty.
func NewLocation(city, state, zipCode *string, latitude, longitude *float64) Location {
	return Location{
		City:      city,
		State:     state,
		ZipCode:   zipCode,
		Latitude:  latitude,
		Longitude: longitude,
		Label:     BuildLabel(city, state),
	}
}

// BuildLabel derives a human-readable label from city and state.
func BuildLabel(city, state *string) string {
	switch {
	case deref(city) != "" && deref(state) != "":
		return deref(city) + ", " + deref(state)
	case deref(city) != "":
		return deref(city)
	case deref(state) != "":
		return deref(state)
	default:
		return FallbackLabel
	}
}

// HasCoordinates reports whether both latitude and longitude are set.
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// HasCity reports whether a city is set.
func (l Location) HasCity() bool {
	return deref(l.City) != ""
}

// HasZip reports whether a zip code is set.
func (l Location) HasZip() bool {
	return deref(l.ZipCode) != ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
