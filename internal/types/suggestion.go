package types

// Suggestion is a normalized candidate shown in an autocomplete dropdown.
type Suggestion struct {
	Label       string   `json:"label"`
	DisplayName string   `json:"displayName,omitempty"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	ZipCode     *string  `json:"zipCode"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// ToLocation converts a suggestion into a Location the resolver can adopt.
func (s Suggestion) ToLocation() Location {
	return NewLocation(s.City, s.State, s.ZipCode, s.Latitude, s.Longitude)
}
