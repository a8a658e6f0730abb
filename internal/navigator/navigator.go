package navigator

import (
	"fmt"

	"socialup-discovery/internal/types"
)

// Key is a keyboard input the navigator understands.
type Key string

const (
	KeyEnter      Key = "Enter"
	KeySpace      Key = " "
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// Item is one selectable pill in the category strip. Special marks
// pseudo-categories such as "All events" that clear the category filter.
type Item struct {
	Category types.Category
	Special  bool
}

// Navigator models the horizontally scrollable category strip: which pill is
// focused and selected, the scroll offset, and whether the arrow buttons are
// shown or disabled at the boundaries. Selecting notifies the parent callback
// and produces a screen-reader announcement.
type Navigator struct {
	items      []Item
	widths     []float64
	gap        float64
	container  float64
	content    float64
	offset     float64
	focused    int
	selected   int
	onSelect   func(Item)
}

func New(items []Item, onSelect func(Item)) *Navigator {
	return &Navigator{
		items:    items,
		onSelect: onSelect,
		selected: -1,
	}
}

// SetMetrics records the measured pill widths and the visible container
// width. It must be called before any scroll computation; a container change
// (resize) re-clamps the current offset.
func (n *Navigator) SetMetrics(itemWidths []float64, containerWidth, gap float64) {
	n.widths = itemWidths
	n.container = containerWidth
	n.gap = gap

	n.content = 0
	for i, w := range itemWidths {
		n.content += w
		if i > 0 {
			n.content += gap
		}
	}
	n.offset = clamp(n.offset, 0, n.maxOffset())
}

// ShowArrows reports whether the content overflows its container at all.
// When it does not, neither arrow is rendered.
func (n *Navigator) ShowArrows() bool {
	return n.content > n.container
}

// CanScrollLeft reports whether the left arrow should be enabled.
func (n *Navigator) CanScrollLeft() bool {
	return n.ShowArrows() && n.offset > 0
}

// CanScrollRight reports whether the right arrow should be enabled.
func (n *Navigator) CanScrollRight() bool {
	return n.ShowArrows() && n.offset < n.maxOffset()
}

// ScrollBy moves the strip by delta, clamped to the content bounds.
func (n *Navigator) ScrollBy(delta float64) {
	n.offset = clamp(n.offset+delta, 0, n.maxOffset())
}

// Offset returns the current scroll position.
func (n *Navigator) Offset() float64 {
	return n.offset
}

// Focused returns the index of the pill holding keyboard focus.
func (n *Navigator) Focused() int {
	return n.focused
}

// Selected returns the index of the selected pill, or -1.
func (n *Navigator) Selected() int {
	return n.selected
}

// Select activates the pill at index: the parent callback receives the full
// item, the pill is scrolled into view (centered when possible, clamped to
// the bounds otherwise), and an announcement for screen readers is returned.
func (n *Navigator) Select(index int) string {
	if index < 0 || index >= len(n.items) {
		return ""
	}
	n.selected = index
	n.focused = index
	n.scrollIntoView(index)

	item := n.items[index]
	if n.onSelect != nil {
		n.onSelect(item)
	}
	return fmt.Sprintf("%s selected", item.Category.Name)
}

// HandleKey applies the keyboard contract: Enter and Space activate the
// focused pill; the arrow keys move focus to the adjacent pill without
// activating it. The returned announcement is empty when nothing was
// activated.
func (n *Navigator) HandleKey(key Key) string {
	switch key {
	case KeyEnter, KeySpace:
		return n.Select(n.focused)
	case KeyArrowLeft:
		if n.focused > 0 {
			n.focused--
		}
	case KeyArrowRight:
		if n.focused < len(n.items)-1 {
			n.focused++
		}
	}
	return ""
}

// scrollIntoView centers the pill at index, clamped so the strip never
// scrolls past its bounds.
func (n *Navigator) scrollIntoView(index int) {
	if index >= len(n.widths) || !n.ShowArrows() {
		return
	}
	center := n.itemStart(index) + n.widths[index]/2
	n.offset = clamp(center-n.container/2, 0, n.maxOffset())
}

func (n *Navigator) itemStart(index int) float64 {
	start := 0.0
	for i := 0; i < index; i++ {
		start += n.widths[i] + n.gap
	}
	return start
}

func (n *Navigator) maxOffset() float64 {
	if n.content <= n.container {
		return 0
	}
	return n.content - n.container
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
