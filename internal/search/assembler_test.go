package search

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"socialup-discovery/internal/filters"
	"socialup-discovery/internal/providers/socialapi"
	"socialup-discovery/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

type mockEventsAPI struct {
	listParams   *socialapi.EventListParams
	searchParams *socialapi.EventListParams
	searchQuery  string
	page         *socialapi.EventsPage
	err          error
}

func (m *mockEventsAPI) ListEvents(params socialapi.EventListParams) (*socialapi.EventsPage, error) {
	m.listParams = &params
	return m.page, m.err
}

func (m *mockEventsAPI) SearchEvents(query string, params socialapi.EventListParams) (*socialapi.EventsPage, error) {
	m.searchQuery = query
	m.searchParams = &params
	return m.page, m.err
}

type mockGroupsAPI struct {
	params *socialapi.GroupListParams
	page   *socialapi.GroupsPage
	err    error
}

func (m *mockGroupsAPI) ListGroups(params socialapi.GroupListParams) (*socialapi.GroupsPage, error) {
	m.params = &params
	return m.page, m.err
}

type mockCategoriesAPI struct {
	categories []types.Category
	err        error
}

func (m *mockCategoriesAPI) GetCategories() ([]types.Category, error) {
	return m.categories, m.err
}

func newTestAssembler(events EventsAPI, groups GroupsAPI) *Assembler {
	a := NewAssemblerWithProviders(testLogger(), events, groups, &mockCategoriesAPI{})
	a.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return a
}

func emptyPage() *socialapi.EventsPage {
	return &socialapi.EventsPage{Events: []types.Event{}, Pagination: types.Pagination{Page: 1}}
}

func seattleLocation() types.Location {
	lat, lng := 47.6062, -122.3321
	return types.NewLocation(strPtr("Seattle"), strPtr("WA"), strPtr("98101"), &lat, &lng)
}

func TestBuildEventParams_CoordinatesWinOverCity(t *testing.T) {
	events := &mockEventsAPI{page: emptyPage()}
	a := newTestAssembler(events, &mockGroupsAPI{})

	_, err := a.FindEvents(Request{Location: seattleLocation(), Filters: map[string]string{}})
	if err != nil {
		t.Fatalf("FindEvents returned error: %v", err)
	}

	p := events.listParams
	if p.Lat == nil || *p.Lat != 47.6062 {
		t.Errorf("Lat = %v, want 47.6062", p.Lat)
	}
	if p.RadiusMiles != DefaultRadiusMiles {
		t.Errorf("RadiusMiles = %d, want default %d", p.RadiusMiles, DefaultRadiusMiles)
	}
	if p.City != "" || p.State != "" || p.ZipCode != "" {
		t.Errorf("city/state/zip sent alongside coordinates: %+v", p)
	}
}

func TestBuildEventParams_CityWhenNoCoordinates(t *testing.T) {
	events := &mockEventsAPI{page: emptyPage()}
	a := newTestAssembler(events, &mockGroupsAPI{})

	loc := types.NewLocation(strPtr("Seattle"), strPtr("WA"), strPtr("98101"), nil, nil)
	if _, err := a.FindEvents(Request{Location: loc, Filters: map[string]string{}}); err != nil {
		t.Fatalf("FindEvents returned error: %v", err)
	}

	p := events.listParams
	if p.City != "Seattle" || p.State != "WA" {
		t.Errorf("city/state = %q/%q, want Seattle/WA", p.City, p.State)
	}
	if p.Lat != nil || p.ZipCode != "" {
		t.Errorf("lat/zip sent alongside city: %+v", p)
	}
}

func TestBuildEventParams_ZipAsLastResort(t *testing.T) {
	events := &mockEventsAPI{page: emptyPage()}
	a := newTestAssembler(events, &mockGroupsAPI{})

	loc := types.NewLocation(nil, nil, strPtr("98101"), nil, nil)
	if _, err := a.FindEvents(Request{Location: loc, Filters: map[string]string{}}); err != nil {
		t.Fatalf("FindEvents returned error: %v", err)
	}

	if events.listParams.ZipCode != "98101" {
		t.Errorf("ZipCode = %q, want 98101", events.listParams.ZipCode)
	}
}

func TestBuildEventParams_DistanceFilterOverridesRadius(t *testing.T) {
	events := &mockEventsAPI{page: emptyPage()}
	a := newTestAssembler(events, &mockGroupsAPI{})

	req := Request{
		Location: seattleLocation(),
		Filters:  map[string]string{filters.KeyDistance: "50"},
	}
	if _, err := a.FindEvents(req); err != nil {
		t.Fatalf("FindEvents returned error: %v", err)
	}

	if events.listParams.RadiusMiles != 50 {
		t.Errorf("RadiusMiles = %d, want 50", events.listParams.RadiusMiles)
	}
}

func TestFindEvents_QuerySelectsSearchCall(t *testing.T) {
	events := &mockEventsAPI{page: emptyPage()}
	a := newTestAssembler(events, &mockGroupsAPI{})

	if _, err := a.FindEvents(Request{Query: "  board games ", Filters: map[string]string{}}); err != nil {
		t.Fatalf("FindEvents returned error: %v", err)
	}

	if events.listParams != nil {
		t.Error("listing call made despite a non-empty query")
	}
	if events.searchQuery != "board games" {
		t.Errorf("search query = %q, want trimmed %q", events.searchQuery, "board games")
	}
}

func TestFindEvents_PageNormalizedToOne(t *testing.T) {
	events := &mockEventsAPI{page: emptyPage()}
	a := newTestAssembler(events, &mockGroupsAPI{})

	if _, err := a.FindEvents(Request{Page: 0, Filters: map[string]string{}}); err != nil {
		t.Fatalf("FindEvents returned error: %v", err)
	}
	if events.listParams.Page != 1 {
		t.Errorf("Page = %d, want 1", events.listParams.Page)
	}
}

func TestDateWindow_Buckets(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		value     string
		hasWindow bool
		start     time.Time
		end       time.Time
	}{
		{name: "today", value: "today", hasWindow: true, start: now, end: now.Add(24 * time.Hour)},
		{name: "tomorrow", value: "tomorrow", hasWindow: true, start: now.Add(24 * time.Hour), end: now.Add(48 * time.Hour)},
		{name: "week", value: "week", hasWindow: true, start: now, end: now.Add(7 * 24 * time.Hour)},
		{name: "month", value: "month", hasWindow: true, start: now, end: now.Add(30 * 24 * time.Hour)},
		{name: "all", value: "all", hasWindow: false},
		{name: "empty", value: "", hasWindow: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := dateWindow(tt.value, now)
			if ok != tt.hasWindow {
				t.Fatalf("hasWindow = %v, want %v", ok, tt.hasWindow)
			}
			if !ok {
				return
			}
			if !w.Start.Equal(tt.start) || !w.End.Equal(tt.end) {
				t.Errorf("window = [%v, %v), want [%v, %v)", w.Start, w.End, tt.start, tt.end)
			}
		})
	}
}

func TestDateWindow_HalfOpenBoundary(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	w, _ := dateWindow("week", now)

	atBoundary := now.Add(7 * 24 * time.Hour)
	if w.contains(atBoundary) {
		t.Error("event exactly at now+7d should be excluded from the week bucket")
	}

	justInside := now.Add(7*24*time.Hour - time.Minute)
	if !w.contains(justInside) {
		t.Error("event at now+6d23h59m should be included in the week bucket")
	}

	if !w.contains(now) {
		t.Error("event exactly at now should be included")
	}
}

func TestFindEvents_AppliesWindowAndSort(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	events := &mockEventsAPI{page: &socialapi.EventsPage{
		Events: []types.Event{
			{ID: "late", Title: "Next week", DateAndTime: now.Add(8 * 24 * time.Hour)},
			{ID: "b", Title: "Tonight late", DateAndTime: now.Add(10 * time.Hour), AttendeeCount: 3},
			{ID: "a", Title: "Tonight early", DateAndTime: now.Add(2 * time.Hour), AttendeeCount: 9},
		},
		Pagination: types.Pagination{Page: 1, Limit: 20, Total: 3, Pages: 1},
	}}
	a := newTestAssembler(events, &mockGroupsAPI{})

	page, err := a.FindEvents(Request{
		Location: seattleLocation(),
		Filters: map[string]string{
			filters.KeyDateRange: "today",
			filters.KeySortBy:    "date",
		},
	})
	if err != nil {
		t.Fatalf("FindEvents returned error: %v", err)
	}

	if !events.listParams.Upcoming {
		t.Error("upcoming flag not sent for a dated window")
	}
	if len(page.Events) != 2 {
		t.Fatalf("got %d events, want 2 after window filtering", len(page.Events))
	}
	if page.Events[0].ID != "a" || page.Events[1].ID != "b" {
		t.Errorf("order = [%s %s], want ascending by date", page.Events[0].ID, page.Events[1].ID)
	}
	// Server pagination is passed through, not recomputed.
	if page.Pagination.Total != 3 {
		t.Errorf("Total = %d, want the server-reported 3", page.Pagination.Total)
	}
}

func TestSortEvents(t *testing.T) {
	base := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	mk := func() []types.Event {
		return []types.Event{
			{ID: "a", DateAndTime: base.Add(48 * time.Hour), AttendeeCount: 5},
			{ID: "b", DateAndTime: base, AttendeeCount: 2},
			{ID: "c", DateAndTime: base, AttendeeCount: 8},
		}
	}

	tests := []struct {
		name   string
		sortBy string
		want   []string
	}{
		{name: "date ascending", sortBy: "date", want: []string{"b", "c", "a"}},
		{name: "popularity descending", sortBy: "popularity", want: []string{"c", "a", "b"}},
		{name: "relevance breaks date ties by attendees", sortBy: "relevance", want: []string{"c", "b", "a"}},
		{name: "unknown leaves server order", sortBy: "", want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := mk()
			sortEvents(events, tt.sortBy)
			for i, want := range tt.want {
				if events[i].ID != want {
					t.Fatalf("order[%d] = %s, want %s (full order %v)", i, events[i].ID, want, ids(events))
				}
			}
		})
	}
}

func TestFindEvents_EndToEndScenario(t *testing.T) {
	// query="", Seattle with coordinates, dateRange=today, sortBy=date.
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	events := &mockEventsAPI{page: &socialapi.EventsPage{
		Events: []types.Event{
			{ID: "tomorrow", DateAndTime: now.Add(30 * time.Hour)},
			{ID: "tonight", DateAndTime: now.Add(6 * time.Hour)},
		},
		Pagination: types.Pagination{Page: 1, Limit: 20, Total: 2, Pages: 1},
	}}
	a := newTestAssembler(events, &mockGroupsAPI{})

	page, err := a.FindEvents(Request{
		Query:    "",
		Location: seattleLocation(),
		Filters: map[string]string{
			filters.KeyDateRange: "today",
			filters.KeySortBy:    "date",
		},
	})
	if err != nil {
		t.Fatalf("FindEvents returned error: %v", err)
	}

	p := events.listParams
	if p == nil {
		t.Fatal("expected a listing call for an empty query")
	}
	if *p.Lat != 47.6062 || *p.Lng != -122.3321 || p.RadiusMiles != 25 || !p.Upcoming {
		t.Errorf("params = lat=%v lng=%v radius=%d upcoming=%v, want 47.6062/-122.3321/25/true",
			*p.Lat, *p.Lng, p.RadiusMiles, p.Upcoming)
	}
	if len(page.Events) != 1 || page.Events[0].ID != "tonight" {
		t.Errorf("events = %v, want only the event inside [now, now+1d)", ids(page.Events))
	}
}

func TestFindEvents_ErrorPropagates(t *testing.T) {
	events := &mockEventsAPI{err: errors.New("boom")}
	a := newTestAssembler(events, &mockGroupsAPI{})

	if _, err := a.FindEvents(Request{Filters: map[string]string{}}); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFindGroups_PassesFilters(t *testing.T) {
	groups := &mockGroupsAPI{page: &socialapi.GroupsPage{}}
	a := newTestAssembler(&mockEventsAPI{}, groups)

	_, err := a.FindGroups(Request{
		Query: "hiking",
		Page:  2,
		Limit: 10,
		Filters: map[string]string{
			filters.KeyCategory: "outdoors",
			filters.KeyPrivacy:  "public",
			filters.KeySortBy:   "members",
		},
	})
	if err != nil {
		t.Fatalf("FindGroups returned error: %v", err)
	}

	p := groups.params
	if p.Search != "hiking" || p.Category != "outdoors" || p.Privacy != "public" || p.SortBy != "members" {
		t.Errorf("unexpected group params: %+v", p)
	}
	if p.Page != 2 || p.Limit != 10 {
		t.Errorf("pagination = %d/%d, want 2/10", p.Page, p.Limit)
	}
}

func ids(events []types.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
