package types

// Pagination carries the paging metadata returned by the SocialUp API.
// It is passed through unmodified even when results are filtered further
// client-side, so totals are an upper bound.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
