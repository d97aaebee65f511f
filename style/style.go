package style

import "github.com/charmbracelet/lipgloss"

// Colors — matches DocFusion branding (emerald/teal on slate).
var (
	Primary   = lipgloss.Color("#10B981") // emerald-500
	Secondary = lipgloss.Color("#14B8A6") // teal-500
	Success   = lipgloss.Color("#22C55E") // green-500
	Warning   = lipgloss.Color("#F59E0B") // amber-500
	Error     = lipgloss.Color("#EF4444") // red-500
	Muted     = lipgloss.Color("#64748B") // slate-500
	Dim       = lipgloss.Color("#334155") // slate-700
	Border    = lipgloss.Color("#475569") // slate-600
)

// Base styles. Rebuilt by SetTheme when the palette changes.
var (
	Bold      = lipgloss.NewStyle().Bold(true)
	Faint     = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Header
	HeaderTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
	HeaderDetail = lipgloss.NewStyle().
			Foreground(Muted)

	// Prompt
	PromptChar = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Chat
	UserLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
	AssistantLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
	SourceText = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Documents panel
	DocName = lipgloss.NewStyle().
		Foreground(Secondary)
	DocMeta = lipgloss.NewStyle().
		Foreground(Muted)
	PanelTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(Muted).
			PaddingLeft(1)
	StatusSession = lipgloss.NewStyle().
			Foreground(Secondary)
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Primary)

	// Error banner (the single visible error slot)
	ErrorBanner = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true).
			PaddingLeft(1)

	// Picker
	PickerBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
	PickerSelected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
	PickerUnselected = lipgloss.NewStyle().
				Foreground(Muted)

	// Hint text (keybindings)
	Hint = lipgloss.NewStyle().
		Foreground(Dim)

	// Welcome screen
	WelcomeTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
	WelcomeMeta = lipgloss.NewStyle().
			Foreground(Muted)
	WelcomeTip = lipgloss.NewStyle().
			Foreground(Dim)
)

// rebuild re-derives every style from the current palette.
func rebuild() {
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)
	HeaderTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	HeaderDetail = lipgloss.NewStyle().Foreground(Muted)
	PromptChar = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	UserLabel = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	AssistantLabel = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	SourceText = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	DocName = lipgloss.NewStyle().Foreground(Secondary)
	DocMeta = lipgloss.NewStyle().Foreground(Muted)
	PanelTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	StatusBar = lipgloss.NewStyle().Foreground(Muted).PaddingLeft(1)
	StatusSession = lipgloss.NewStyle().Foreground(Secondary)
	SpinnerStyle = lipgloss.NewStyle().Foreground(Primary)
	ErrorBanner = lipgloss.NewStyle().Foreground(Error).Bold(true).PaddingLeft(1)
	PickerBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1)
	PickerSelected = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	PickerUnselected = lipgloss.NewStyle().Foreground(Muted)
	Hint = lipgloss.NewStyle().Foreground(Dim)
	WelcomeTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	WelcomeMeta = lipgloss.NewStyle().Foreground(Muted)
	WelcomeTip = lipgloss.NewStyle().Foreground(Dim)
}
