package search

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"socialup-discovery/internal/filters"
	"socialup-discovery/internal/providers/socialapi"
	"socialup-discovery/internal/types"
)

// DefaultRadiusMiles applies when searching by coordinates without an
// explicit distance filter.
const DefaultRadiusMiles = 25

// EventsAPI is the slice of the SocialUp API the assembler needs for events.
type EventsAPI interface {
	ListEvents(params socialapi.EventListParams) (*socialapi.EventsPage, error)
	SearchEvents(query string, params socialapi.EventListParams) (*socialapi.EventsPage, error)
}

// GroupsAPI fetches group listings.
type GroupsAPI interface {
	ListGroups(params socialapi.GroupListParams) (*socialapi.GroupsPage, error)
}

// CategoriesAPI fetches the category list.
type CategoriesAPI interface {
	GetCategories() ([]types.Category, error)
}

// Request is one assembled search submission: free-text query, resolved
// location, and the active filter values.
type Request struct {
	Query    string
	Page     int
	Limit    int
	Location types.Location
	Filters  map[string]string
}

// Assembler combines query, location, and filters into one outbound request
// and applies the post-processing the remote API does not perform.
type Assembler struct {
	events     EventsAPI
	groups     GroupsAPI
	categories CategoriesAPI
	logger     *slog.Logger
	now        func() time.Time
}

func NewAssembler(logger *slog.Logger, client *socialapi.Client) *Assembler {
	return NewAssemblerWithProviders(logger, client, client, client)
}

// NewAssemblerWithProviders creates an assembler with custom providers.
// This is useful for testing with mock providers.
func NewAssemblerWithProviders(logger *slog.Logger, events EventsAPI, groups GroupsAPI, categories CategoriesAPI) *Assembler {
	return &Assembler{
		events:     events,
		groups:     groups,
		categories: categories,
		logger:     logger.With("component", "result-assembler"),
		now:        time.Now,
	}
}

// FindEvents issues a listing or free-text search call depending on whether
// the query is non-empty, then applies the date window and sort client-side.
// Pagination metadata is passed through as the server reported it, so totals
// do not account for items the window removed.
func (a *Assembler) FindEvents(req Request) (*socialapi.EventsPage, error) {
	params := a.buildEventParams(req)

	window, hasWindow := dateWindow(req.Filters[filters.KeyDateRange], a.now())
	params.Upcoming = hasWindow

	query := strings.TrimSpace(req.Query)

	var page *socialapi.EventsPage
	var err error
	if query == "" {
		page, err = a.events.ListEvents(params)
	} else {
		page, err = a.events.SearchEvents(query, params)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	items := page.Events
	if hasWindow {
		items = filterByWindow(items, window)
	}
	sortEvents(items, req.Filters[filters.KeySortBy])
	page.Events = items

	a.logger.Debug("assembled event results",
		"query", query,
		"returned", len(items),
		"server_total", page.Pagination.Total,
	)

	return page, nil
}

// FindGroups fetches groups with the group surface's filters.
func (a *Assembler) FindGroups(req Request) (*socialapi.GroupsPage, error) {
	page, err := a.groups.ListGroups(socialapi.GroupListParams{
		Page:     normalizePage(req.Page),
		Limit:    req.Limit,
		Category: req.Filters[filters.KeyCategory],
		Privacy:  req.Filters[filters.KeyPrivacy],
		SortBy:   req.Filters[filters.KeySortBy],
		Search:   strings.TrimSpace(req.Query),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}
	return page, nil
}

// Categories returns the selectable event categories.
func (a *Assembler) Categories() ([]types.Category, error) {
	cats, err := a.categories.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return cats, nil
}

// buildEventParams applies the location precedence: coordinates beat city,
// city beats zip. Exactly one branch fires.
func (a *Assembler) buildEventParams(req Request) socialapi.EventListParams {
	params := socialapi.EventListParams{
		Page:              normalizePage(req.Page),
		Limit:             req.Limit,
		EventCategory:     req.Filters[filters.KeyCategory],
		EventLocationType: req.Filters[filters.KeyLocationType],
	}

	loc := req.Location
	switch {
	case loc.HasCoordinates():
		params.Lat = loc.Latitude
		params.Lng = loc.Longitude
		params.RadiusMiles = radiusFrom(req.Filters[filters.KeyDistance])
	case loc.HasCity():
		params.City = *loc.City
		if loc.State != nil {
			params.State = *loc.State
		}
	case loc.HasZip():
		params.ZipCode = *loc.ZipCode
	}

	return params
}

func radiusFrom(value string) int {
	if value == "" {
		return DefaultRadiusMiles
	}
	radius, err := strconv.Atoi(value)
	if err != nil || radius <= 0 {
		return DefaultRadiusMiles
	}
	return radius
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// window is a half-open interval [Start, End).
type window struct {
	Start time.Time
	End   time.Time
}

func (w window) contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// dateWindow buckets the dateRange filter into a half-open interval. The
// remote API only understands a boolean upcoming flag, so the window is
// applied client-side after the response returns.
func dateWindow(value string, now time.Time) (window, bool) {
	day := 24 * time.Hour
	switch value {
	case "today":
		return window{Start: now, End: now.Add(day)}, true
	case "tomorrow":
		return window{Start: now.Add(day), End: now.Add(2 * day)}, true
	case "week":
		return window{Start: now, End: now.Add(7 * day)}, true
	case "month":
		return window{Start: now, End: now.Add(30 * day)}, true
	default:
		return window{}, false
	}
}

func filterByWindow(events []types.Event, w window) []types.Event {
	out := make([]types.Event, 0, len(events))
	for _, e := range events {
		if w.contains(e.DateAndTime) {
			out = append(out, e)
		}
	}
	return out
}

func sortEvents(events []types.Event, sortBy string) {
	switch sortBy {
	case "date":
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].DateAndTime.Before(events[j].DateAndTime)
		})
	case "popularity":
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].AttendeeCount > events[j].AttendeeCount
		})
	case "relevance":
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].DateAndTime.Equal(events[j].DateAndTime) {
				return events[i].AttendeeCount > events[j].AttendeeCount
			}
			return events[i].DateAndTime.Before(events[j].DateAndTime)
		})
	}
}
