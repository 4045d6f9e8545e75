package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/weather-orbit/internal/weather"
)

// theme is the palette for one solar period.
type theme struct {
	accent lipgloss.Color
	muted  lipgloss.Color
	panel  lipgloss.Color
}

var themes = map[weather.Period]theme{
	weather.PeriodDawn:  {accent: lipgloss.Color("#f4a261"), muted: lipgloss.Color("#b08968"), panel: lipgloss.Color("#e9c46a")},
	weather.PeriodDay:   {accent: lipgloss.Color("#58a6ff"), muted: lipgloss.Color("#8b949e"), panel: lipgloss.Color("#a5d6ff")},
	weather.PeriodDusk:  {accent: lipgloss.Color("#e76f51"), muted: lipgloss.Color("#9c6644"), panel: lipgloss.Color("#d2a8ff")},
	weather.PeriodNight: {accent: lipgloss.Color("#d2a8ff"), muted: lipgloss.Color("#484f58"), panel: lipgloss.Color("#264653")},
}

var (
	colorError = lipgloss.Color("#f85149")
	colorInfo  = lipgloss.Color("#3fb950")
)

func themeFor(p weather.Period) theme {
	if t, ok := themes[p]; ok {
		return t
	}
	return themes[weather.PeriodNight]
}

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	divider  lipgloss.Style
	errorMsg lipgloss.Style
	infoMsg  lipgloss.Style
	panel    lipgloss.Style
	temp     lipgloss.Style
}

func newStyles(t theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.accent),
		label:    lipgloss.NewStyle().Foreground(t.muted),
		muted:    lipgloss.NewStyle().Foreground(t.muted).Italic(true),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0d1117")).Background(t.accent),
		divider:  lipgloss.NewStyle().Foreground(t.muted).Underline(true),
		errorMsg: lipgloss.NewStyle().Bold(true).Foreground(colorError),
		infoMsg:  lipgloss.NewStyle().Foreground(colorInfo),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.panel).
			Padding(0, 2),
		temp: lipgloss.NewStyle().Bold(true).Foreground(t.accent),
	}
}
