package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/weather-orbit/internal/controller"
	"github.com/i474232898/weather-orbit/internal/navigator"
	"github.com/i474232898/weather-orbit/internal/weather"
)

const helpText = "↑/↓ navigate • enter search • esc close • tab focus • ctrl+u reset • ctrl+l clear history • ctrl+r refresh • ctrl+c quit"

func (m model) View() string {
	s := m.state
	st := newStyles(themeFor(weather.PeriodOf(s.Snapshot)))

	var b strings.Builder
	b.WriteString(st.title.Render("weather-orbit"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine(st))
	b.WriteString("\n")

	if s.ListVisible {
		for i, it := range s.Items() {
			b.WriteString(renderItem(st, it, i == s.Cursor))
			b.WriteString("\n")
		}
	}

	if s.Snapshot != nil {
		b.WriteString("\n")
		b.WriteString(renderSnapshot(st, s.Snapshot))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.muted.Render(helpText))
	return b.String()
}

func (m model) statusLine(st styles) string {
	l := m.state.Lifecycle
	switch l.Phase {
	case controller.PhaseLoading:
		return m.spinner.View() + " " + st.muted.Render(controller.LoadingPlaceholder)
	case controller.PhaseError:
		return st.errorMsg.Render("✗ " + l.Message)
	case controller.PhaseInfo:
		return st.infoMsg.Render("✓ " + l.Message)
	default:
		return ""
	}
}

func renderItem(st styles, it navigator.Item, selected bool) string {
	switch it.(type) {
	case navigator.Divider:
		return "  " + st.divider.Render(it.Label())
	case navigator.ClearAction:
		if selected {
			return st.selected.Render("  " + it.Label() + " ")
		}
		return "  " + st.errorMsg.Render(it.Label())
	}

	label := it.Label()
	if h, ok := it.(navigator.HistoryItem); ok && h.Entry.LastTemperatureC != nil {
		label = fmt.Sprintf("%s  %.0f°C", label, *h.Entry.LastTemperatureC)
	}
	if selected {
		return st.selected.Render("› " + label + " ")
	}
	return "  " + label
}

func renderSnapshot(st styles, snap *weather.Snapshot) string {
	period := weather.PeriodOf(snap)

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		st.title.Render(snap.Label()),
		"  ",
		st.label.Render(fmt.Sprintf("%s · %s", period, weather.TimezoneLabel(snap.TimezoneOffset))),
	)

	lines := []string{
		header,
		st.label.Render(weather.LocalStamp(snap.Timestamp, snap.TimezoneOffset)),
		"",
		st.temp.Render(fmt.Sprintf("%.1f°C", snap.TemperatureC)) + "  " + weather.TitleCase(snap.Description),
		row(st, "Feels like", fmt.Sprintf("%.1f°C", snap.FeelsLikeC)),
		row(st, "Humidity", fmt.Sprintf("%.0f%%", snap.HumidityPct)),
		row(st, "Wind", windText(snap)),
		row(st, "Pressure", fmt.Sprintf("%.0f hPa", snap.PressureHpa)),
		row(st, "Visibility", fmt.Sprintf("%.1f km", weather.VisibilityKm(snap.VisibilityM))),
	}
	if snap.HasSunTimes() {
		lines = append(lines,
			row(st, "Sunrise", weather.LocalClock(snap.Sunrise, snap.TimezoneOffset)),
			row(st, "Sunset", weather.LocalClock(snap.Sunset, snap.TimezoneOffset)),
		)
	}
	if key := weather.AssetKey(snap); key != "" {
		lines = append(lines, row(st, "Artwork", key))
	}
	if url := weather.IconURL(snap.Icon); url != "" {
		lines = append(lines, row(st, "Icon", url))
	}

	return st.panel.Render(strings.Join(lines, "\n"))
}

func row(st styles, name, value string) string {
	return st.label.Render(fmt.Sprintf("%-11s", name)) + value
}

func windText(snap *weather.Snapshot) string {
	text := fmt.Sprintf("%.1f m/s", snap.WindSpeedMS)
	if dir := weather.WindDirection(snap.WindDeg); dir != "" {
		text += " " + dir
	}
	if snap.WindGustMS > 0 {
		text += fmt.Sprintf(", gusts %.1f m/s", snap.WindGustMS)
	}
	return text
}
