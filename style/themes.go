package style

import "github.com/charmbracelet/lipgloss"

// Theme defines a complete color palette for the TUI.
type Theme struct {
	Name                                        string
	Primary, Secondary, Success, Warning, Error lipgloss.Color
	Muted, Dim, Border                          lipgloss.Color
}

// Built-in themes.
var (
	darkTheme = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#10B981"), // emerald-500
		Secondary: lipgloss.Color("#14B8A6"), // teal-500
		Success:   lipgloss.Color("#22C55E"), // green-500
		Warning:   lipgloss.Color("#F59E0B"), // amber-500
		Error:     lipgloss.Color("#EF4444"), // red-500
		Muted:     lipgloss.Color("#64748B"), // slate-500
		Dim:       lipgloss.Color("#334155"), // slate-700
		Border:    lipgloss.Color("#475569"), // slate-600
	}

	lightTheme = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#059669"), // emerald-600
		Secondary: lipgloss.Color("#0D9488"), // teal-600
		Success:   lipgloss.Color("#16A34A"), // green-600
		Warning:   lipgloss.Color("#D97706"), // amber-600
		Error:     lipgloss.Color("#DC2626"), // red-600
		Muted:     lipgloss.Color("#94A3B8"), // slate-400
		Dim:       lipgloss.Color("#CBD5E1"), // slate-300
		Border:    lipgloss.Color("#94A3B8"), // slate-400
	}
)

// Themes maps theme names to their definitions.
var Themes = map[string]Theme{
	"dark":  darkTheme,
	"light": lightTheme,
}

// CurrentThemeName tracks the active theme name.
var CurrentThemeName = "dark"

// SetTheme activates a named theme, falling back to dark for unknown names.
func SetTheme(name string) {
	theme, ok := Themes[name]
	if !ok {
		theme = darkTheme
	}
	CurrentThemeName = theme.Name
	Primary = theme.Primary
	Secondary = theme.Secondary
	Success = theme.Success
	Warning = theme.Warning
	Error = theme.Error
	Muted = theme.Muted
	Dim = theme.Dim
	Border = theme.Border
	rebuild()
}
