package types

// Group is a community group users can browse and join.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Privacy     string `json:"privacy,omitempty"`
	MemberCount int    `json:"memberCount"`
}
