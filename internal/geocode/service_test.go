package geocode

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"socialup-discovery/internal/providers/nominatim"
	"socialup-discovery/internal/types"
)

type mockReverseProvider struct {
	resp *nominatim.ReverseAPIResponse
	err  error
}

func (m *mockReverseProvider) Reverse(latitude, longitude float64) (*nominatim.ReverseAPIResponse, error) {
	return m.resp, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func respWithAddress(addr nominatim.Address) *nominatim.ReverseAPIResponse {
	return &nominatim.ReverseAPIResponse{Address: addr}
}

func TestReverseGeocode_FieldPriority(t *testing.T) {
	tests := []struct {
		name          string
		address       nominatim.Address
		expectedCity  string
		expectedState string
		expectedZip   string
	}{
		{
			name:          "city wins over town and county",
			address:       nominatim.Address{City: "Seattle", Town: "Ballard", County: "King County", State: "Washington", Postcode: "98101"},
			expectedCity:  "Seattle",
			expectedState: "Washington",
			expectedZip:   "98101",
		},
		{
			name:          "town when no city",
			address:       nominatim.Address{Town: "Leavenworth", State: "Washington"},
			expectedCity:  "Leavenworth",
			expectedState: "Washington",
		},
		{
			name:         "village when no city or town",
			address:      nominatim.Address{Village: "Index", County: "Snohomish County"},
			expectedCity: "Index",
		},
		{
			name:         "municipality before county",
			address:      nominatim.Address{Municipality: "Anchorage", County: "Anchorage Borough"},
			expectedCity: "Anchorage",
		},
		{
			name:         "county as last resort",
			address:      nominatim.Address{County: "King County"},
			expectedCity: "King County",
		},
		{
			name:          "region when no state",
			address:       nominatim.Address{City: "San Juan", Region: "Puerto Rico"},
			expectedCity:  "San Juan",
			expectedState: "Puerto Rico",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewServiceWithProvider(testLogger(), &mockReverseProvider{resp: respWithAddress(tt.address)})

			loc := svc.ReverseGeocode(47.0, -122.0)

			if got := strOrEmpty(loc.City); got != tt.expectedCity {
				t.Errorf("City = %q, want %q", got, tt.expectedCity)
			}
			if got := strOrEmpty(loc.State); got != tt.expectedState {
				t.Errorf("State = %q, want %q", got, tt.expectedState)
			}
			if got := strOrEmpty(loc.ZipCode); got != tt.expectedZip {
				t.Errorf("ZipCode = %q, want %q", got, tt.expectedZip)
			}
			if loc.Latitude == nil || *loc.Latitude != 47.0 {
				t.Errorf("Latitude not preserved: %v", loc.Latitude)
			}
		})
	}
}

func TestReverseGeocode_ProviderFailureDegrades(t *testing.T) {
	svc := NewServiceWithProvider(testLogger(), &mockReverseProvider{err: errors.New("connection refused")})

	loc := svc.ReverseGeocode(47.6062, -122.3321)

	if loc.City != nil || loc.State != nil || loc.ZipCode != nil {
		t.Errorf("expected nil address fields, got %+v", loc)
	}
	if loc.Label != types.FallbackLabel {
		t.Errorf("Label = %q, want %q", loc.Label, types.FallbackLabel)
	}
	if loc.Latitude == nil || *loc.Latitude != 47.6062 {
		t.Errorf("coordinates should be preserved on failure, got %v", loc.Latitude)
	}
}

func TestReverseGeocode_EmptyAddressDegrades(t *testing.T) {
	svc := NewServiceWithProvider(testLogger(), &mockReverseProvider{resp: respWithAddress(nominatim.Address{})})

	loc := svc.ReverseGeocode(0, 0)

	if loc.Label != types.FallbackLabel {
		t.Errorf("Label = %q, want %q", loc.Label, types.FallbackLabel)
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
