package types

// Category is a selectable event category with its display icon.
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}
