package gallery

// HandleKey applies a global keyboard event and reports whether it was
// consumed. Both DOM key names and terminal key names are accepted.
func (n *Navigator) HandleKey(key string) bool {
	switch key {
	case "ArrowRight", "right", "l":
		return n.Next()
	case "ArrowLeft", "left", "h":
		return n.Previous()
	case "Escape", "esc":
		return n.ExitFullscreen()
	case "f", "F":
		return n.ToggleFullscreen()
	case "Home", "home":
		return n.JumpTo(0)
	case "End", "end":
		return n.JumpTo(n.count - 1)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return n.JumpTo(int(key[0] - '1'))
	}
	return false
}
