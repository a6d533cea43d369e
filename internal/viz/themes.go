package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the bar view.
type Theme struct {
	Name      string
	Title     lipgloss.Color
	Bar       lipgloss.Color
	Highlight lipgloss.Color
	Done      lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Paused    lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Title:     lipgloss.Color("#00ffff"),
		Bar:       lipgloss.Color("#ff00ff"),
		Highlight: lipgloss.Color("#ffff00"),
		Done:      lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Paused:    lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Title:     lipgloss.Color("#88ff88"),
		Bar:       lipgloss.Color("#00cc00"),
		Highlight: lipgloss.Color("#ffff00"),
		Done:      lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Paused:    lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	// gray bars turning green when sorted
	ThemeMinimal = Theme{
		Name:      "minimal",
		Title:     lipgloss.Color("#00ffff"),
		Bar:       lipgloss.Color("#888888"),
		Highlight: lipgloss.Color("#ffffff"),
		Done:      lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Paused:    lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Title:     lipgloss.Color("#00a8cc"),
		Bar:       lipgloss.Color("#0077be"),
		Highlight: lipgloss.Color("#ffd700"),
		Done:      lipgloss.Color("#00ff88"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Paused:    lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Title:     lipgloss.Color("#feca57"),
		Bar:       lipgloss.Color("#ff6b6b"),
		Highlight: lipgloss.Color("#ff9ff3"),
		Done:      lipgloss.Color("#5fd068"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Paused:    lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns the named theme, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, candidate := range Themes {
		if candidate.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
