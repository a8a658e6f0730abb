package types

import "time"

// Event is a single discoverable event as returned by the SocialUp API.
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	DateAndTime   time.Time `json:"dateAndTime"`
	AttendeeCount int       `json:"attendeeCount"`
	Category      string    `json:"eventCategory,omitempty"`
	LocationType  string    `json:"eventLocationType,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	IsAttending   bool      `json:"isAttending,omitempty"`
}
