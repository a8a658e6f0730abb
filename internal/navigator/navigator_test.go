package navigator

import (
	"testing"

	"socialup-discovery/internal/types"
)

func testItems() []Item {
	return []Item{
		{Category: types.Category{Name: "All events"}, Special: true},
		{Category: types.Category{Name: "Music", Icon: "🎵"}},
		{Category: types.Category{Name: "Outdoors", Icon: "🏔"}},
		{Category: types.Category{Name: "Food", Icon: "🍜"}},
		{Category: types.Category{Name: "Tech", Icon: "💻"}},
	}
}

// fiveWide gives every pill a width of 100 with a 10px gap: content = 540.
func fiveWide(n *Navigator, containerWidth float64) {
	n.SetMetrics([]float64{100, 100, 100, 100, 100}, containerWidth, 10)
}

func TestArrows_HiddenWithoutOverflow(t *testing.T) {
	n := New(testItems(), nil)
	fiveWide(n, 600) // container wider than content

	if n.ShowArrows() {
		t.Error("arrows shown though content fits the container")
	}
	if n.CanScrollLeft() || n.CanScrollRight() {
		t.Error("scrolling enabled though content fits the container")
	}
}

func TestArrows_BoundaryStates(t *testing.T) {
	n := New(testItems(), nil)
	fiveWide(n, 300) // content 540, max offset 240

	if !n.ShowArrows() {
		t.Fatal("arrows hidden though content overflows")
	}
	if n.CanScrollLeft() {
		t.Error("left arrow enabled at the left boundary")
	}
	if !n.CanScrollRight() {
		t.Error("right arrow disabled with content to the right")
	}

	n.ScrollBy(1000) // clamped to max
	if n.Offset() != 240 {
		t.Errorf("Offset = %v, want clamped 240", n.Offset())
	}
	if n.CanScrollRight() {
		t.Error("right arrow enabled at the right boundary")
	}
	if !n.CanScrollLeft() {
		t.Error("left arrow disabled with content to the left")
	}

	n.ScrollBy(-1000)
	if n.Offset() != 0 {
		t.Errorf("Offset = %v, want clamped 0", n.Offset())
	}
}

func TestSelect_NotifiesAndAnnounces(t *testing.T) {
	var selected *Item
	n := New(testItems(), func(item Item) { selected = &item })
	fiveWide(n, 300)

	announcement := n.Select(1)

	if selected == nil || selected.Category.Name != "Music" {
		t.Fatalf("callback got %+v, want the Music item", selected)
	}
	if announcement != "Music selected" {
		t.Errorf("announcement = %q, want %q", announcement, "Music selected")
	}
	if n.Selected() != 1 {
		t.Errorf("Selected = %d, want 1", n.Selected())
	}
}

func TestSelect_CentersClamped(t *testing.T) {
	n := New(testItems(), nil)
	fiveWide(n, 300) // max offset 240

	// First pill: ideal center would be negative, clamp to 0.
	n.Select(0)
	if n.Offset() != 0 {
		t.Errorf("Offset after selecting first = %v, want 0", n.Offset())
	}

	// Middle pill (index 2): starts at 220, center 270, offset 270-150=120.
	n.Select(2)
	if n.Offset() != 120 {
		t.Errorf("Offset after selecting middle = %v, want 120", n.Offset())
	}

	// Last pill: ideal offset exceeds max, clamp to 240.
	n.Select(4)
	if n.Offset() != 240 {
		t.Errorf("Offset after selecting last = %v, want clamped 240", n.Offset())
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	n := New(testItems(), func(Item) { t.Error("callback fired for out-of-range index") })
	fiveWide(n, 300)

	if got := n.Select(99); got != "" {
		t.Errorf("announcement = %q, want empty", got)
	}
	if got := n.Select(-1); got != "" {
		t.Errorf("announcement = %q, want empty", got)
	}
}

func TestHandleKey_ArrowsMoveFocusWithoutActivating(t *testing.T) {
	activations := 0
	n := New(testItems(), func(Item) { activations++ })
	fiveWide(n, 300)

	n.HandleKey(KeyArrowRight)
	n.HandleKey(KeyArrowRight)
	if n.Focused() != 2 {
		t.Errorf("Focused = %d, want 2", n.Focused())
	}
	if activations != 0 {
		t.Errorf("arrow keys activated %d times, want 0", activations)
	}

	n.HandleKey(KeyArrowLeft)
	if n.Focused() != 1 {
		t.Errorf("Focused = %d, want 1", n.Focused())
	}

	// Focus does not wrap past the ends.
	n.HandleKey(KeyArrowLeft)
	n.HandleKey(KeyArrowLeft)
	if n.Focused() != 0 {
		t.Errorf("Focused = %d, want clamped 0", n.Focused())
	}
}

func TestHandleKey_EnterAndSpaceActivate(t *testing.T) {
	tests := []struct {
		name string
		key  Key
	}{
		{name: "enter", key: KeyEnter},
		{name: "space", key: KeySpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activations := 0
			n := New(testItems(), func(Item) { activations++ })
			fiveWide(n, 300)

			n.HandleKey(KeyArrowRight)
			announcement := n.HandleKey(tt.key)

			if activations != 1 {
				t.Errorf("activations = %d, want 1", activations)
			}
			if announcement != "Music selected" {
				t.Errorf("announcement = %q, want %q", announcement, "Music selected")
			}
			if n.Selected() != 1 {
				t.Errorf("Selected = %d, want the focused pill", n.Selected())
			}
		})
	}
}
