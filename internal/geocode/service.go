package geocode

import (
	"log/slog"

	"socialup-discovery/internal/providers/nominatim"
	"socialup-discovery/internal/types"
)

// ReverseProvider fetches the address for a coordinate pair.
type ReverseProvider interface {
	Reverse(latitude, longitude float64) (*nominatim.ReverseAPIResponse, error)
}

// Service converts coordinates into a Location.
type Service interface {
	ReverseGeocode(latitude, longitude float64) types.Location
}

type geocodeService struct {
	provider ReverseProvider
	logger   *slog.Logger
}

// NewService creates a geocode service backed by the public Nominatim API.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(logger, nominatim.NewClient(logger))
}

// NewServiceWithProvider creates a geocode service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(logger *slog.Logger, provider ReverseProvider) Service {
	return &geocodeService{
		provider: provider,
		logger:   logger.With("component", "geocode-service"),
	}
}

// ReverseGeocode resolves coordinates into a Location. It never fails: when
// the provider errors or returns an unusable address, the result keeps the
// coordinates with nil address fields and the generic label.
func (s *geocodeService) ReverseGeocode(latitude, longitude float64) types.Location {
	resp, err := s.provider.Reverse(latitude, longitude)
	if err != nil {
		s.logger.Warn("reverse geocode failed, degrading to coordinates only",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return types.NewLocation(nil, nil, nil, &latitude, &longitude)
	}

	city := firstNonEmpty(
		resp.Address.City,
		resp.Address.Town,
		resp.Address.Village,
		resp.Address.Municipality,
		resp.Address.County,
	)
	state := firstNonEmpty(resp.Address.State, resp.Address.Region)
	zip := resp.Address.Postcode

	loc := types.NewLocation(
		optional(city),
		optional(state),
		optional(zip),
		&latitude,
		&longitude,
	)

	s.logger.Debug("reverse geocoded coordinates",
		"latitude", latitude,
		"longitude", longitude,
		"label", loc.Label,
	)

	return loc
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
