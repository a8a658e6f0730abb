package location

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"socialup-discovery/internal/geocode"
	"socialup-discovery/internal/types"
)

const (
	// geolocationTimeout bounds how long a position fix may take.
	geolocationTimeout = 8 * time.Second
	// cachedPositionMaxAge is how stale a cached fix may be on first load.
	cachedPositionMaxAge = 10 * time.Minute
)

// Resolver owns the process-wide current location. All mutation goes through
// its methods and is persisted synchronously before the new value is returned,
// so readers never observe a half-written state.
type Resolver struct {
	mu          sync.Mutex
	current     types.Location
	initialized bool

	store       Store
	source      Source
	geocoder    geocode.Service
	defaultLoc  types.Location
	logger      *slog.Logger
}

func NewResolver(
	logger *slog.Logger,
	store Store,
	source Source,
	geocoder geocode.Service,
	defaultLoc types.Location,
) *Resolver {
	return &Resolver{
		store:      store,
		source:     source,
		geocoder:   geocoder,
		defaultLoc: defaultLoc,
		logger:     logger.With("component", "location-resolver"),
	}
}

// Initialize resolves the starting location: a stored value wins outright (no
// geolocation attempt), then a fresh-enough device position reverse-geocoded
// into an address, then the fixed default. It always lands on a concrete
// location.
func (r *Resolver) Initialize(ctx context.Context) types.Location {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return r.current
	}

	stored, err := r.store.Load(ctx)
	if err != nil {
		r.logger.Warn("failed to load stored location", "error", err)
	}
	if stored != nil {
		r.logger.Debug("using stored location", "label", stored.Label)
		r.current = *stored
		r.initialized = true
		return r.current
	}

	lat, lng, err := r.source.Current(geolocationTimeout, cachedPositionMaxAge)
	if err != nil {
		r.logger.Info("geolocation unavailable, using default location", "error", err)
		r.setLocked(ctx, r.defaultLoc)
		return r.current
	}

	r.setLocked(ctx, r.geocoder.ReverseGeocode(lat, lng))
	return r.current
}

// Current returns the resolved location. Callers must Initialize first; until
// then the default location is returned.
func (r *Resolver) Current() types.Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.initialized {
		return r.defaultLoc
	}
	return r.current
}

// UpdateLocation overwrites the current location and persists it. A nil
// location resets to the default.
func (r *Resolver) UpdateLocation(ctx context.Context, loc *types.Location) types.Location {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.defaultLoc
	if loc != nil {
		next = *loc
		if next.Label == "" {
			next.Label = types.BuildLabel(next.City, next.State)
		}
	}
	r.setLocked(ctx, next)
	return r.current
}

// RequestGeolocation demands a fresh position fix (ignoring any cached fix),
// reverse-geocodes it, and adopts the result. On failure the current location
// is left untouched and a GeolocationError describes why.
func (r *Resolver) RequestGeolocation(ctx context.Context) (types.Location, error) {
	lat, lng, err := r.source.Current(geolocationTimeout, 0)
	if err != nil {
		r.logger.Info("geolocation request failed", "error", err)
		return types.Location{}, err
	}
	return r.AdoptCoordinates(ctx, lat, lng), nil
}

// AdoptCoordinates reverse-geocodes the given position and makes it current.
func (r *Resolver) AdoptCoordinates(ctx context.Context, latitude, longitude float64) types.Location {
	loc := r.geocoder.ReverseGeocode(latitude, longitude)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.setLocked(ctx, loc)
	return r.current
}

// Clear resets the current location to the default.
func (r *Resolver) Clear(ctx context.Context) types.Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setLocked(ctx, r.defaultLoc)
	return r.current
}

// setLocked makes loc current and persists it. Persistence failures are
// logged and swallowed: the in-memory value stays authoritative for the
// session. Callers must hold r.mu.
func (r *Resolver) setLocked(ctx context.Context, loc types.Location) {
	r.current = loc
	r.initialized = true
	if err := r.store.Save(ctx, loc); err != nil {
		r.logger.Warn("failed to persist location", "label", loc.Label, "error", err)
	}
}
