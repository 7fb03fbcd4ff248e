package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fmizzell/tasknest"
)

// Theme is the palette for one of the two display modes
type Theme struct {
	Name    string
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Danger  lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color
	Info    lipgloss.Color
}

var (
	Light = Theme{
		Name:    "light",
		Text:    lipgloss.Color("#111827"),
		Muted:   lipgloss.Color("#6B7280"),
		Border:  lipgloss.Color("#E5E7EB"),
		Accent:  lipgloss.Color("#2563EB"),
		Danger:  lipgloss.Color("#DC2626"),
		Warning: lipgloss.Color("#F97316"),
		Success: lipgloss.Color("#16A34A"),
		Info:    lipgloss.Color("#2563EB"),
	}
	Dark = Theme{
		Name:    "dark",
		Text:    lipgloss.Color("#F9FAFB"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Border:  lipgloss.Color("#374151"),
		Accent:  lipgloss.Color("#60A5FA"),
		Danger:  lipgloss.Color("#EF4444"),
		Warning: lipgloss.Color("#FB923C"),
		Success: lipgloss.Color("#22C55E"),
		Info:    lipgloss.Color("#60A5FA"),
	}
)

// ThemeFor picks the palette for the dark mode flag
func ThemeFor(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

func (t Theme) text() lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.Text) }
func (t Theme) muted() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Muted) }

func (t Theme) heading() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text).Bold(true)
}

func (t Theme) panel(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width)
}

// PriorityLabel is the badge text of a priority
func PriorityLabel(p tasknest.Priority) string {
	switch p {
	case tasknest.PriorityHigh:
		return "High"
	case tasknest.PriorityMedium:
		return "Medium"
	case tasknest.PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}

func (t Theme) priorityColor(p tasknest.Priority) lipgloss.Color {
	switch p {
	case tasknest.PriorityHigh:
		return t.Danger
	case tasknest.PriorityMedium:
		return lipgloss.Color("#CA8A04")
	case tasknest.PriorityLow:
		return t.Success
	default:
		return t.Muted
	}
}

// StatusLabel is the column title of a status
func StatusLabel(s tasknest.Status) string {
	switch s {
	case tasknest.StatusTodo:
		return "To do"
	case tasknest.StatusInProgress:
		return "In progress"
	case tasknest.StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

func (t Theme) statusColor(s tasknest.Status) lipgloss.Color {
	switch s {
	case tasknest.StatusCompleted:
		return t.Success
	case tasknest.StatusInProgress:
		return t.Info
	default:
		return t.Muted
	}
}

// IconGlyph draws a category icon; values outside the enumeration get the
// fallback glyph
func IconGlyph(icon tasknest.Icon) string {
	switch icon {
	case tasknest.IconBriefcase:
		return "💼"
	case tasknest.IconUser:
		return "👤"
	case tasknest.IconHeart:
		return "♥"
	case tasknest.IconBookOpen:
		return "📖"
	case tasknest.IconStar:
		return "★"
	default:
		return "★"
	}
}
