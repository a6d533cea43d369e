package export

import (
	"fmt"
	"os"
	"strings"
)

const (
	svgBackground = "#0a0a0a"
	svgBar        = "#00ffff"
	svgHighlight  = "#ff00ff"
)

// BarsToSVG draws one frame as vertical bars, each value scaled against
// limit. Indices listed in highlight use the highlight fill.
func BarsToSVG(values []int, limit, barWidth, height int, highlight ...int) string {
	if len(values) == 0 || limit <= 0 || barWidth <= 0 || height <= 0 {
		return ""
	}

	marked := make(map[int]bool, len(highlight))
	for _, i := range highlight {
		marked[i] = true
	}

	width := len(values) * barWidth
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground))

	for i, v := range values {
		h := v * height / limit
		if h > height {
			h = height
		}
		if h <= 0 {
			continue
		}
		fill := svgBar
		if marked[i] {
			fill = svgHighlight
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, i*barWidth, height-h, barWidth, h, fill))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteBars writes BarsToSVG output to path.
func WriteBars(path string, values []int, limit int, highlight ...int) error {
	svg := BarsToSVG(values, limit, 4, 300, highlight...)
	if svg == "" {
		return fmt.Errorf("nothing to export")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
