package viz

// DrawBars clears c and draws values[i] as a bar in dot column i, scaled so
// that limit spans the full canvas height. Non-zero values get at least one dot.
func DrawBars(c *Canvas, values []int, limit int) {
	c.Clear()
	if limit <= 0 {
		return
	}
	h := c.SubHeight()
	for i, v := range values {
		if i >= c.SubWidth() {
			break
		}
		bar := v * h / limit
		if bar > h {
			bar = h
		}
		if bar == 0 && v > 0 {
			bar = 1
		}
		if bar <= 0 {
			continue
		}
		c.VLine(i, h-bar, h-1)
	}
}

// CellsFor returns how many terminal columns n bars need.
func CellsFor(n int) int {
	return (n + 1) / 2
}

// cellHighlighted reports whether cell col holds one of the highlighted bars.
func cellHighlighted(col int, highlight [2]int) bool {
	for _, h := range highlight {
		if h >= 0 && h/2 == col {
			return true
		}
	}
	return false
}
