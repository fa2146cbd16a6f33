package output

import (
	"github.com/arthur-debert/dotctl/pkg/links"
	"github.com/arthur-debert/dotctl/pkg/status"
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors for light and dark terminals
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#F2A20C", Dark: "#FFB627"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#3C7DD9", Dark: "#6CB6FF"}
)

// Styles holds the styles bound to one lipgloss renderer
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Item    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Foreground(HeadingColor).Bold(true),
		Success: r.NewStyle().Foreground(SuccessColor).Bold(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Warning: r.NewStyle().Foreground(WarningColor).Bold(true),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Path:    r.NewStyle().Foreground(PathColor),
		Item:    r.NewStyle().PaddingLeft(2),
	}
}

// ForOutcome picks the style of a link outcome
func (s Styles) ForOutcome(o links.Outcome) lipgloss.Style {
	switch o {
	case links.OutcomeCreated, links.OutcomeRemoved:
		return s.Success
	case links.OutcomePlanned:
		return s.Warning
	case links.OutcomeFailed:
		return s.Error
	default:
		return s.Muted
	}
}

// ForState picks the style of a link state
func (s Styles) ForState(st status.State) lipgloss.Style {
	switch st {
	case status.StateLinked:
		return s.Success
	case status.StateMissing:
		return s.Muted
	case status.StateDrifted:
		return s.Warning
	default:
		return s.Error
	}
}
