package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/askeland/termin/internal/appointment"
	"github.com/askeland/termin/internal/calendar"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

type Styles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Dimmed   lipgloss.Style
	Weekend  lipgloss.Style
	Header   lipgloss.Style
	Event    lipgloss.Style
	Help     lipgloss.Style
	Message  lipgloss.Style
	Border   lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Dimmed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Weekend: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Event: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
	}
}

// appointmentStyle colors an appointment line with its palette color,
// falling back to the plain event style.
func (m *Model) appointmentStyle(a appointment.Appointment) lipgloss.Style {
	if a.Color != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color))
	}
	return m.styles.Event
}

// nextPaletteColor steps to the next color in the palette; an unset or
// unknown color starts at the beginning.
func nextPaletteColor(current string) string {
	for i, c := range appointment.Palette {
		if c == current {
			return appointment.Palette[(i+1)%len(appointment.Palette)]
		}
	}
	return appointment.Palette[0]
}

// dayAppointments returns the appointments for a day, earliest start
// first, title as tie-break so the order is stable.
func (m *Model) dayAppointments(day time.Time) []appointment.Appointment {
	var out []appointment.Appointment
	for _, a := range m.appointments {
		if calendar.SameDay(a.Date, day) {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi := calendar.TimeToPosition(out[i].StartTime)
		pj := calendar.TimeToPosition(out[j].StartTime)
		if pi != pj {
			return pi < pj
		}
		return out[i].Title < out[j].Title
	})
	return out
}

func containsDay(days []time.Time, day time.Time) bool {
	for _, d := range days {
		if calendar.SameDay(d, day) {
			return true
		}
	}
	return false
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// renderDayDetails renders the detail box for the selected day: every
// appointment with its time range, wrapped description and color tag.
func (m *Model) renderDayDetails(boxWidth int) string {
	if boxWidth < 24 {
		boxWidth = 24
	}

	var lines []string
	header := wordwrap.String(m.selectedDay.Format("Mon Jan 2, 2006"), boxWidth-2)
	lines = append(lines, m.styles.Header.Render(header))

	appts := m.dayAppointments(m.selectedDay)
	if len(appts) == 0 {
		lines = append(lines, "")
		lines = append(lines, m.styles.Help.Render("(no appointments)"))
	}

	for _, a := range appts {
		lines = append(lines, "")

		timeLine := fmt.Sprintf("%s - %s (%dm)",
			a.StartTime, a.EndTime, calendar.DurationMinutes(a.StartTime, a.EndTime))
		style := m.appointmentStyle(a)
		if a.ID == m.selectedID {
			style = m.styles.Selected
		}
		lines = append(lines, style.Render(timeLine))

		title := a.Title
		maxWidth := boxWidth - 4
		if maxWidth < 16 {
			maxWidth = 16
		}
		for _, line := range strings.Split(wordwrap.String(title, maxWidth), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}

		if a.Description != "" {
			for _, line := range strings.Split(wordwrap.String(a.Description, maxWidth), "\n") {
				if line != "" {
					lines = append(lines, m.styles.Help.Render(line))
				}
			}
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.Border.Width(boxWidth).Render(content)
}
