package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/askeland/termin/internal/calendar"

	"github.com/charmbracelet/lipgloss/v2"
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (m *Model) viewMonth() string {
	cellWidth := (m.width - 2) / 7
	if cellWidth < 8 {
		cellWidth = 8
	}

	rowsAvailable := m.height - 5 // header, weekday row, status bar
	weeks := len(m.snapshot.Days) / 7
	cellHeight := rowsAvailable / weeks
	if cellHeight < 2 {
		cellHeight = 2
	}
	maxEvents := cellHeight - 1

	var sections []string
	sections = append(sections, m.renderHeader())

	// Weekday heading
	var heads []string
	for _, name := range weekdayNames {
		heads = append(heads, m.styles.Header.Render(padRight(name, cellWidth)))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, heads...))

	for week := 0; week < weeks; week++ {
		var cells []string
		for weekday := 0; weekday < 7; weekday++ {
			day := m.snapshot.Days[week*7+weekday]
			cells = append(cells, m.renderMonthCell(day, cellWidth, cellHeight, maxEvents))
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderMonthCell(day time.Time, cellWidth, cellHeight, maxEvents int) string {
	var lines []string

	// Day number, styled by its relationship to today/selection/month
	num := fmt.Sprintf("%2d", day.Day())
	switch {
	case calendar.SameDay(day, m.selectedDay):
		num = m.styles.Selected.Render(num)
	case calendar.SameDay(day, time.Now()):
		num = m.styles.Today.Render(num)
	case day.Month() != m.snapshot.Anchor.Month():
		num = m.styles.Dimmed.Render(num)
	case day.Weekday() == time.Saturday || day.Weekday() == time.Sunday:
		num = m.styles.Weekend.Render(num)
	default:
		num = m.styles.Normal.Render(num)
	}
	lines = append(lines, num)

	appts := m.dayAppointments(day)
	shown := len(appts)
	if shown > maxEvents {
		shown = maxEvents - 1
		if shown < 0 {
			shown = 0
		}
	}

	for _, a := range appts[:shown] {
		label := truncate(a.StartTime+" "+a.Title, cellWidth-1)
		style := m.appointmentStyle(a)
		if a.ID == m.selectedID && calendar.SameDay(day, m.selectedDay) {
			style = m.styles.Selected
		}
		lines = append(lines, style.Render(label))
	}
	if shown < len(appts) {
		lines = append(lines, m.styles.Help.Render(fmt.Sprintf("+%d more", len(appts)-shown)))
	}

	for len(lines) < cellHeight {
		lines = append(lines, "")
	}

	cell := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.NewStyle().Width(cellWidth).Render(cell)
}

func (m *Model) viewWeek() string {
	colWidth := (m.width*2/3 - 1) / 7
	if colWidth < 10 {
		colWidth = 10
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	rows := m.height - 4
	var cols []string
	for _, day := range m.snapshot.Days {
		cols = append(cols, m.renderWeekColumn(day, colWidth, rows))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	details := m.renderDayDetails(m.width - colWidth*7 - 4)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, grid, details))

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewDay() string {
	var sections []string
	sections = append(sections, m.renderHeader())

	day := m.snapshot.Days[0]
	appts := m.dayAppointments(day)

	// Hour gutter with one row per hour, starting at the configured
	// first hour. An appointment occupies every row its rendered
	// height covers.
	slots := calendar.HourSlots()
	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}

	var rows []string
	for i := 0; i < visible && m.config.FirstHour+i < len(slots); i++ {
		hour := m.config.FirstHour + i
		gutter := m.styles.Help.Render(slots[hour] + " ")

		var entries []string
		for _, a := range appts {
			top := calendar.TimeToPosition(a.StartTime)
			bottom := top + calendar.HeightUnits(a.StartTime, a.EndTime)
			hourStart := hour * 60
			hourEnd := hourStart + 60

			if top >= hourEnd || bottom <= hourStart {
				continue
			}

			if top >= hourStart {
				// Block starts in this row
				label := fmt.Sprintf("%s-%s %s", a.StartTime, a.EndTime, a.Title)
				style := m.appointmentStyle(a)
				if a.ID == m.selectedID {
					style = m.styles.Selected
				}
				entries = append(entries, style.Render(truncate(label, m.width*2/3)))
			} else {
				entries = append(entries, m.styles.Dimmed.Render("│ "+truncate(a.Title, 20)))
			}
		}

		line := gutter
		if len(entries) > 0 {
			line += strings.Join(entries, "  ")
		}
		rows = append(rows, line)
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	details := m.renderDayDetails(m.width / 3)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, grid, details))

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderWeekColumn(day time.Time, colWidth, rows int) string {
	var lines []string

	head := day.Format("Mon 2")
	switch {
	case calendar.SameDay(day, m.selectedDay):
		head = m.styles.Selected.Render(padRight(head, colWidth-1))
	case calendar.SameDay(day, time.Now()):
		head = m.styles.Today.Render(padRight(head, colWidth-1))
	default:
		head = m.styles.Header.Render(padRight(head, colWidth-1))
	}
	lines = append(lines, head)

	for _, a := range m.dayAppointments(day) {
		if len(lines) >= rows {
			break
		}
		label := truncate(a.StartTime+" "+a.Title, colWidth-1)
		style := m.appointmentStyle(a)
		if a.ID == m.selectedID && calendar.SameDay(day, m.selectedDay) {
			style = m.styles.Selected
		}
		lines = append(lines, style.Render(label))
	}

	col := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.NewStyle().Width(colWidth).Render(col)
}

func (m *Model) renderHeader() string {
	label := m.styles.Header.Render(m.snapshot.Label)
	mode := m.styles.Help.Render(fmt.Sprintf("[%s]", m.snapshot.Mode))
	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", mode)
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s | Appointments: %d",
		m.selectedDay.Format(m.config.DateFormat),
		len(m.dayAppointments(m.selectedDay)))

	right := "? for help | q to quit"

	if m.message != "" {
		right = m.styles.Message.Render(m.message)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) viewHelp() string {
	help := []string{
		m.styles.Header.Render("Termin Help"),
		"",
		m.styles.Normal.Render("Navigation:"),
		m.styles.Help.Render("  h/l/←/→ - Previous/next day"),
		m.styles.Help.Render("  j/k/↓/↑ - Next/previous week (cycle appointments in day view)"),
		m.styles.Help.Render("  </>     - Previous/next period"),
		m.styles.Help.Render("  t       - Jump to today"),
		m.styles.Help.Render("  1/2/3   - Month/week/day view"),
		m.styles.Help.Render("  tab     - Cycle appointments on the selected day"),
		"",
		m.styles.Normal.Render("Appointments:"),
		m.styles.Help.Render("  n       - New appointment on the selected day"),
		m.styles.Help.Render("  e       - Edit selected appointment"),
		m.styles.Help.Render("  x       - Delete selected appointment"),
		m.styles.Help.Render("  J/K     - Shift selected appointment a half hour later/sooner"),
		m.styles.Help.Render("  m       - Grab the selected appointment, m again to drop it"),
		m.styles.Help.Render("  c       - Cycle the appointment color"),
		m.styles.Help.Render("  r       - Reload from disk"),
		m.styles.Help.Render("  ?       - Toggle help"),
		m.styles.Help.Render("  q       - Quit"),
		"",
		m.styles.Help.Render("Press any key to return..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) viewEditor() string {
	var sections []string

	title := "New Appointment"
	if m.editingID != "" {
		title = "Edit Appointment"
	}
	sections = append(sections, m.styles.Header.Render(title))
	sections = append(sections, "")

	prompt := m.styles.Normal.Render("Enter appointment (e.g., 'tomorrow 14:00-15:30 Dentist'):")
	sections = append(sections, prompt)

	// Show input with cursor
	input := m.inputBuffer
	if m.cursorPos < len(input) {
		input = input[:m.cursorPos] + "█" + input[m.cursorPos:]
	} else {
		input = input + "█"
	}

	sections = append(sections, m.styles.Selected.Render(input))
	sections = append(sections, "")
	sections = append(sections, m.styles.Help.Render("Enter to save, Esc to cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewConfirmDelete() string {
	a, _ := m.selectedAppointment()

	lines := []string{
		m.styles.Header.Render("Delete Appointment"),
		"",
		m.styles.Normal.Render(fmt.Sprintf("Delete \"%s\" (%s - %s)?", a.Title, a.StartTime, a.EndTime)),
		"",
		m.styles.Help.Render("y to delete, any other key to cancel"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
