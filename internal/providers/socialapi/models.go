package socialapi

import "socialup-discovery/internal/types"

// EventListParams are the query parameters accepted by the events endpoints.
// Zero values are omitted from the outbound request.
type EventListParams struct {
	Page              int
	Limit             int
	EventCategory     string
	EventLocationType string
	City              string
	State             string
	ZipCode           string
	Lat               *float64
	Lng               *float64
	RadiusMiles       int
	Upcoming          bool
}

// GroupListParams are the query parameters accepted by the groups endpoint.
type GroupListParams struct {
	Page     int
	Limit    int
	Category string
	Privacy  string
	SortBy   string
	Search   string
}

// EventsPage is one page of events plus the server's paging metadata.
type EventsPage struct {
	Events     []types.Event    `json:"events"`
	Pagination types.Pagination `json:"pagination"`
}

// GroupsPage is one page of groups plus the server's paging metadata.
type GroupsPage struct {
	Groups     []types.Group    `json:"groups"`
	Pagination types.Pagination `json:"pagination"`
}

type categoriesEnvelope struct {
	Categories []types.Category `json:"categories"`
}

type suggestEnvelope struct {
	Data struct {
		Suggestions []types.Suggestion `json:"suggestions"`
	} `json:"data"`
}

type commentsEnvelope struct {
	Comments []types.Comment `json:"comments"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}
