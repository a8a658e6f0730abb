package socialapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"socialup-discovery/internal/types"
)

// Client talks to the SocialUp core REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		logger:     logger.With("component", "socialapi-client"),
	}
}

// ListEvents fetches a page of events filtered by the given parameters.
func (c *Client) ListEvents(params EventListParams) (*EventsPage, error) {
	var page EventsPage
	if err := c.get("/events", params.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchEvents performs a free-text event search with the same filters as
// ListEvents.
func (c *Client) SearchEvents(query string, params EventListParams) (*EventsPage, error) {
	q := params.values()
	q.Set("q", query)

	var page EventsPage
	if err := c.get("/events/search", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListGroups fetches a page of groups.
func (c *Client) ListGroups(params GroupListParams) (*GroupsPage, error) {
	q := url.Values{}
	setInt(q, "page", params.Page)
	setInt(q, "limit", params.Limit)
	setString(q, "category", params.Category)
	setString(q, "privacy", params.Privacy)
	setString(q, "sortBy", params.SortBy)
	setString(q, "search", params.Search)

	var page GroupsPage
	if err := c.get("/groups", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCategories fetches the full category list.
func (c *Client) GetCategories() ([]types.Category, error) {
	var envelope categoriesEnvelope
	if err := c.get("/categories", url.Values{}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Categories, nil
}

// SuggestLocations queries the backend's own location suggestion endpoint.
// It is the fallback source when the external place service is unavailable.
func (c *Client) SuggestLocations(query string, limit int) ([]types.Suggestion, error) {
	q := url.Values{}
	q.Set("q", query)
	setInt(q, "limit", limit)

	var envelope suggestEnvelope
	if err := c.get("/locations/suggest", q, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Suggestions, nil
}

// Rsvp registers the current user for an event.
func (c *Client) Rsvp(eventID string) error {
	return c.send(http.MethodPost, "/events/"+url.PathEscape(eventID)+"/rsvp")
}

// CancelRsvp withdraws the current user's RSVP.
func (c *Client) CancelRsvp(eventID string) error {
	return c.send(http.MethodDelete, "/events/"+url.PathEscape(eventID)+"/rsvp")
}

// ListComments fetches the comments for an event. Comment lists are viewable
// anonymously in the UI, so a 401 is treated as an empty list rather than an
// error. Do not "fix" this into an error path.
func (c *Client) ListComments(eventID string) ([]types.Comment, error) {
	var envelope commentsEnvelope
	err := c.get("/events/"+url.PathEscape(eventID)+"/comments", url.Values{}, &envelope)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsAuthRequired() {
			c.logger.Debug("comments require auth, returning empty list", "event_id", eventID)
			return []types.Comment{}, nil
		}
		return nil, err
	}
	return envelope.Comments, nil
}

func (c *Client) get(path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	// Append to the base URL's path; the base may carry a prefix like /api.
	u = u.JoinPath(path)
	u.RawQuery = query.Encode()

	c.logger.Debug("fetching from socialup api", "url", u.String())

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch from socialup api", "path", path, "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode socialup api response", "path", path, "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) send(method, path string) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(path)

	req, err := http.NewRequest(method, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to call socialup api", "method", method, "path", path, "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp, path)
	}

	return nil
}

func (c *Client) errorFromResponse(resp *http.Response, path string) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope errorEnvelope
	_ = json.Unmarshal(body, &envelope)

	c.logger.Warn("socialup api returned error",
		"path", path,
		"status_code", resp.StatusCode,
		"response_body", string(body),
	)

	return newAPIError(resp.StatusCode, envelope.Message)
}

func (p EventListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setString(q, "eventCategory", p.EventCategory)
	setString(q, "eventLocationType", p.EventLocationType)
	setString(q, "city", p.City)
	setString(q, "state", p.State)
	setString(q, "zipCode", p.ZipCode)
	if p.Lat != nil && p.Lng != nil {
		q.Set("lat", strconv.FormatFloat(*p.Lat, 'f', -1, 64))
		q.Set("lng", strconv.FormatFloat(*p.Lng, 'f', -1, 64))
		setInt(q, "radiusMiles", p.RadiusMiles)
	}
	if p.Upcoming {
		q.Set("upcoming", "true")
	}
	return q
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setInt(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
