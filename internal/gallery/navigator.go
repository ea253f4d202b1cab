// Package gallery holds the image-index and fullscreen state of an open
// product detail view.
package gallery

// Navigator tracks the displayed image of a product and whether the view is
// fullscreen. The zero value is a navigator over an empty image sequence.
//
// Invariant: 0 <= Index() < Len() whenever Len() >= 1, and Index() == 0 when
// Len() == 0.
type Navigator struct {
	count      int
	index      int
	fullscreen bool
}

func New(count int) *Navigator {
	n := &Navigator{}
	n.Reset(count)
	return n
}

// Reset is called whenever the selected product changes.
func (n *Navigator) Reset(count int) {
	if count < 0 {
		count = 0
	}
	n.count = count
	n.index = 0
	n.fullscreen = false
}

func (n *Navigator) Len() int         { return n.count }
func (n *Navigator) Index() int       { return n.index }
func (n *Navigator) Fullscreen() bool { return n.fullscreen }

// Available reports whether navigation makes sense at all.
func (n *Navigator) Available() bool { return n.count > 0 }

// Next advances cyclically. It returns false when there are no images.
func (n *Navigator) Next() bool {
	if !n.Available() {
		return false
	}
	n.index = (n.index + 1) % n.count
	return true
}

// Previous steps back cyclically. It returns false when there are no images.
func (n *Navigator) Previous() bool {
	if !n.Available() {
		return false
	}
	n.index = (n.index - 1 + n.count) % n.count
	return true
}

// JumpTo selects image i. Out-of-range requests are ignored, not wrapped.
func (n *Navigator) JumpTo(i int) bool {
	if i < 0 || i >= n.count {
		return false
	}
	n.index = i
	return true
}

func (n *Navigator) ToggleFullscreen() bool {
	if !n.Available() {
		return false
	}
	n.fullscreen = !n.fullscreen
	return true
}

// ExitFullscreen leaves fullscreen and reports whether it was on.
func (n *Navigator) ExitFullscreen() bool {
	if !n.fullscreen {
		return false
	}
	n.fullscreen = false
	return true
}

// Current returns the displayed entry of images, or "" when images is empty.
func (n *Navigator) Current(images []string) string {
	if n.index < 0 || n.index >= len(images) {
		return ""
	}
	return images[n.index]
}
