package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	selected lipgloss.Style
	mass     lipgloss.Style
	beaker   lipgloss.Style
	panel    lipgloss.Style
	warning  lipgloss.Style
	key      lipgloss.Style
}

func newPalette(t Theme) palette {
	return palette{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		subtle:   lipgloss.NewStyle().Foreground(t.Muted),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Selected),
		mass:     lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		beaker:   lipgloss.NewStyle().Foreground(t.Liquid).Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 2),
		warning: lipgloss.NewStyle().Foreground(t.Warning),
		key:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
	}
}

// Separator renders a muted divider of the given width.
func (p palette) separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return p.subtle.Render(strings.Repeat("─", width))
	}
	return p.subtle.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}

// keyHints renders "key desc" pairs on one line.
func (p palette) keyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(p.key.Render(pairs[i]) + p.subtle.Render(" "+pairs[i+1]))
	}
	return b.String()
}
