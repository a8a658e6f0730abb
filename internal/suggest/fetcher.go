package suggest

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"socialup-discovery/internal/providers/nominatim"
	"socialup-discovery/internal/types"
)

// MinQueryLength is the shortest trimmed query that triggers a search.
const MinQueryLength = 2

// 5-digit US zip, optionally with the +4 extension.
var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// PlaceProvider is the external place-search service.
type PlaceProvider interface {
	Search(query string, limit int) ([]nominatim.PlaceAPIResponse, error)
	SearchPostalCode(postalCode string, limit int) ([]nominatim.PlaceAPIResponse, error)
}

// FallbackProvider is the backend's own suggestion endpoint, used when the
// external service fails or returns nothing usable.
type FallbackProvider interface {
	SuggestLocations(query string, limit int) ([]types.Suggestion, error)
}

// Source produces suggestions for a query. Fetcher is the canonical
// implementation; Debounced wraps any Source with burst coalescing.
type Source interface {
	Fetch(query string, limit int) ([]types.Suggestion, error)
}

// Fetcher turns free-text input into a deduplicated list of location
// suggestions.
type Fetcher struct {
	places   PlaceProvider
	fallback FallbackProvider
	logger   *slog.Logger
}

func NewFetcher(logger *slog.Logger, places PlaceProvider, fallback FallbackProvider) *Fetcher {
	return &Fetcher{
		places:   places,
		fallback: fallback,
		logger:   logger.With("component", "suggestion-fetcher"),
	}
}

// Fetch resolves suggestions for the query. Queries shorter than
// MinQueryLength after trimming return an empty list without any call.
// Zip-shaped queries use the postal-code search; everything else asks for
// twice the limit to compensate for results dropped during normalization.
func (f *Fetcher) Fetch(query string, limit int) ([]types.Suggestion, error) {
	q := strings.TrimSpace(query)
	if len(q) < MinQueryLength {
		return []types.Suggestion{}, nil
	}

	var raw []nominatim.PlaceAPIResponse
	var searchErr error
	if zipPattern.MatchString(q) {
		raw, searchErr = f.places.SearchPostalCode(q, limit)
	} else {
		raw, searchErr = f.places.Search(q, 2*limit)
	}

	if searchErr == nil {
		suggestions := dedupe(normalize(raw), limit)
		if len(suggestions) > 0 {
			return suggestions, nil
		}
		f.logger.Debug("place search returned nothing usable, trying fallback", "query", q)
	} else {
		f.logger.Warn("place search failed, trying fallback", "query", q, "error", searchErr)
	}

	fromFallback, fallbackErr := f.fallback.SuggestLocations(q, limit)
	if fallbackErr != nil {
		f.logger.Error("fallback suggestion source failed", "query", q, "error", fallbackErr)
		if searchErr != nil {
			return nil, searchErr
		}
		return nil, fallbackErr
	}

	for i := range fromFallback {
		if fromFallback[i].Label == "" {
			fromFallback[i].Label = buildSuggestionLabel(fromFallback[i])
		}
	}
	return dedupe(fromFallback, limit), nil
}

// normalize maps raw place results into suggestions, discarding any result
// that has neither a city-like field nor a postal code.
func normalize(raw []nominatim.PlaceAPIResponse) []types.Suggestion {
	out := make([]types.Suggestion, 0, len(raw))
	for _, place := range raw {
		city := firstNonEmpty(
			place.Address.City,
			place.Address.Town,
			place.Address.Village,
			place.Address.Municipality,
			place.Address.County,
		)
		zip := place.Address.Postcode
		if city == "" && zip == "" {
			continue
		}

		state := firstNonEmpty(place.Address.State, place.Address.Region)

		s := types.Suggestion{
			DisplayName: place.DisplayName,
			City:        optional(city),
			State:       optional(state),
			ZipCode:     optional(zip),
			Latitude:    parseCoord(place.Lat),
			Longitude:   parseCoord(place.Lon),
		}
		s.Label = buildSuggestionLabel(s)
		out = append(out, s)
	}
	return out
}

// buildSuggestionLabel follows the display rules: zip-city-state when all
// three are known, then city-state, then whichever single field exists.
func buildSuggestionLabel(s types.Suggestion) string {
	city, state, zip := strVal(s.City), strVal(s.State), strVal(s.ZipCode)
	switch {
	case zip != "" && city != "" && state != "":
		return zip + " — " + city + ", " + state
	case city != "" && state != "":
		return city + ", " + state
	case city != "":
		return city
	case zip != "":
		return zip
	default:
		return "Unknown"
	}
}

// dedupe drops suggestions with an already-seen (city, state) pair, keeping
// the first occurrence, and truncates to limit. Entries with no city or
// state are keyed by zip so distinct postal codes survive; entries with no
// address fields at all are keyed by label so they don't collapse into one.
func dedupe(suggestions []types.Suggestion, limit int) []types.Suggestion {
	out := make([]types.Suggestion, 0, limit)
	seen := make(map[string]struct{}, len(suggestions))
	for _, s := range suggestions {
		key := strings.ToLower(strVal(s.City)) + "|" + strings.ToLower(strVal(s.State))
		if key == "|" {
			if zip := strVal(s.ZipCode); zip != "" {
				key = "zip:" + zip
			} else {
				key = "label:" + strings.ToLower(s.Label)
			}
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func parseCoord(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
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

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
