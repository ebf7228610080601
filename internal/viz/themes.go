package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines a colour scheme for the animation: UI accents plus one
// colour per disk size (smallest first).
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Disks   [10]lipgloss.Color
}

// Available themes
var (
	// ThemeClassic keeps the colour-blind accessible palette of the
	// original desktop solver.
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#4A90E2"),
		Accent:  lipgloss.Color("#FF6B6B"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#7ED321"),
		Warning: lipgloss.Color("#F5A623"),
		Error:   lipgloss.Color("#D0021B"),
		Disks: [10]lipgloss.Color{
			"#E8F4FD", "#4A90E2", "#7ED321", "#F5A623", "#D0021B",
			"#9013FE", "#50E3C2", "#B8E986", "#F8E71C", "#BD10E0",
		},
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
		Disks: [10]lipgloss.Color{
			"#e0f7ff", "#a8e4ff", "#6fcfff", "#3ab5f5", "#0f99e0",
			"#0077be", "#005f99", "#004a77", "#003655", "#002233",
		},
	}

	ThemeMono = Theme{
		Name:    "mono",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Success: lipgloss.Color("#cccccc"),
		Warning: lipgloss.Color("#aaaaaa"),
		Error:   lipgloss.Color("#ff0000"),
		Disks: [10]lipgloss.Color{
			"#ffffff", "#eeeeee", "#dddddd", "#cccccc", "#bbbbbb",
			"#aaaaaa", "#999999", "#888888", "#777777", "#666666",
		},
	}

	// Default theme
	CurrentTheme = ThemeClassic

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeOcean,
		ThemeMono,
	}
)

// DiskStyle returns the render style for a disk size under the current
// theme.
func DiskStyle(size int) lipgloss.Style {
	c := lipgloss.Color("#CCCCCC")
	if size >= 1 && size <= len(CurrentTheme.Disks) {
		c = CurrentTheme.Disks[size-1]
	}
	return lipgloss.NewStyle().Foreground(c)
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
