package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/wordlens/internal/domain"
	"github.com/heartmarshall/wordlens/internal/service/analysis"
)

// Theme holds the styles of the marked tiers. Easy words are never styled.
type Theme struct {
	Medium lipgloss.Style
	Hard   lipgloss.Style
}

// NewTheme returns the standard theme: medium words orange, hard words
// blue, both underlined. Styles are bound to r so the color profile
// follows the output they are written to.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Medium: r.NewStyle().Foreground(lipgloss.Color("#FFA500")).Underline(true),
		Hard:   r.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Underline(true),
	}
}

// Renderer draws analyzed tokens.
type Renderer struct {
	theme Theme
}

// NewRenderer creates a Renderer.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render draws every token followed by one unstyled space, so offsets in
// the analysis refer to the visible text.
func (r *Renderer) Render(tokens []analysis.ClassifiedToken) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(r.style(t.Tier, t.Raw))
		b.WriteByte(' ')
	}
	return b.String()
}

func (r *Renderer) style(tier domain.Tier, text string) string {
	if text == "" {
		return ""
	}
	switch tier {
	case domain.TierMedium:
		return r.theme.Medium.Render(text)
	case domain.TierHard:
		return r.theme.Hard.Render(text)
	default:
		return text
	}
}

// Legend describes the styles, for the REPL banner.
func (r *Renderer) Legend() string {
	return r.theme.Medium.Render("medium") + "  " + r.theme.Hard.Render("hard")
}
