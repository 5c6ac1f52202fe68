package widget

// Key values for keydown events, using the UI Events key names.
const (
	KeyEscape    = "Escape"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyTab       = "Tab"
)
