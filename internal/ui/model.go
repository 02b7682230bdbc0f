package ui

import (
	"fmt"
	"time"

	"github.com/askeland/termin/internal/appointment"
	"github.com/askeland/termin/internal/calendar"
	"github.com/askeland/termin/internal/config"
	"github.com/askeland/termin/internal/parser"

	tea "github.com/charmbracelet/bubbletea"
)

type uiMode int

const (
	modeGrid uiMode = iota
	modeEditor
	modeHelp
	modeConfirmDelete
)

type Model struct {
	// Core components
	config *config.Config
	store  *appointment.Store
	nav    *calendar.Navigator
	entry  *parser.EntryParser

	// View state
	mode         uiMode
	snapshot     calendar.Snapshot
	appointments []appointment.Appointment
	selectedDay  time.Time
	selectedID   string // appointment selection within the selected day
	grabbedID    string // appointment picked up with "m", waiting for a target day

	// UI state
	width        int
	height       int
	message      string
	messageTimer *time.Timer

	// Editor state
	editingID   string // non-empty when the editor replaces an existing appointment
	inputBuffer string
	cursorPos   int

	// Styles
	styles Styles
}

func NewModel(cfg *config.Config, store *appointment.Store, nav *calendar.Navigator) *Model {
	m := &Model{
		config: cfg,
		store:  store,
		nav:    nav,
		entry:  parser.NewEntryParser(),
		mode:   modeGrid,
		styles: defaultStyles(),
	}

	m.snapshot = nav.Snapshot()
	m.selectedDay = m.snapshot.Anchor

	// Every mutation replays the full collection.
	store.Subscribe(func(appts []appointment.Appointment) {
		m.appointments = appts
	})

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.tickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		// Pick up external edits to the appointments file periodically.
		if m.config.AutoRefresh {
			m.store.Reload()
			return m, m.tickCmd()
		}
		return m, nil

	case messageTimeoutMsg:
		m.message = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeHelp:
		return m.viewHelp()
	case modeEditor:
		return m.viewEditor()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	}

	switch m.snapshot.Mode {
	case calendar.ViewWeek:
		return m.viewWeek()
	case calendar.ViewDay:
		return m.viewDay()
	default:
		return m.viewMonth()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.mode == modeGrid {
			return m, tea.Quit
		}

	case "?":
		// Only toggles help from the grid; the editor needs the rune.
		if m.mode == modeHelp {
			m.mode = modeGrid
			return m, nil
		}
		if m.mode == modeGrid {
			m.mode = modeHelp
			return m, nil
		}
	}

	switch m.mode {
	case modeGrid:
		return m.handleGridKeys(msg)
	case modeEditor:
		return m.handleEditorKeys(msg)
	case modeConfirmDelete:
		return m.handleConfirmKeys(msg)
	case modeHelp:
		m.mode = modeGrid
	}

	return m, nil
}

func (m *Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l", "right":
		// Move right = next day
		m.moveSelection(1)

	case "h", "left":
		// Move left = previous day
		m.moveSelection(-1)

	case "j", "down":
		if m.snapshot.Mode == calendar.ViewDay {
			m.cycleAppointment(1)
		} else {
			m.moveSelection(7)
		}

	case "k", "up":
		if m.snapshot.Mode == calendar.ViewDay {
			m.cycleAppointment(-1)
		} else {
			m.moveSelection(-7)
		}

	case ">":
		m.nav.Next()
		m.refreshGrid(true)

	case "<":
		m.nav.Previous()
		m.refreshGrid(true)

	case "t":
		m.nav.Today()
		m.refreshGrid(true)

	case "1":
		m.nav.SetViewMode(calendar.ViewMonth)
		m.refreshGrid(false)

	case "2":
		m.nav.SetViewMode(calendar.ViewWeek)
		m.refreshGrid(false)

	case "3":
		// Day view anchors on the selected day
		m.nav.SetAnchor(m.selectedDay)
		m.nav.SetViewMode(calendar.ViewDay)
		m.refreshGrid(false)

	case "tab":
		m.cycleAppointment(1)

	case "shift+tab":
		m.cycleAppointment(-1)

	case "n":
		// New appointment on the selected day
		m.mode = modeEditor
		m.editingID = ""
		m.inputBuffer = m.selectedDay.Format("2006-01-02") + " "
		m.cursorPos = len(m.inputBuffer)

	case "e":
		if a, ok := m.selectedAppointment(); ok {
			m.mode = modeEditor
			m.editingID = a.ID
			m.inputBuffer = fmt.Sprintf("%s %s-%s %s",
				a.Date.Format("2006-01-02"), a.StartTime, a.EndTime, a.Title)
			m.cursorPos = len(m.inputBuffer)
		}

	case "x", "delete":
		if _, ok := m.selectedAppointment(); ok {
			if m.config.ConfirmDelete {
				m.mode = modeConfirmDelete
			} else {
				m.deleteSelected()
			}
		}

	case "J":
		// Nudge the selected appointment half an hour later, as if it
		// had been dragged 30px down.
		m.nudgeSelected(30)

	case "K":
		m.nudgeSelected(-30)

	case "m":
		// First press grabs the selected appointment, second press
		// drops it on the day under the cursor.
		if m.grabbedID == "" {
			if a, ok := m.selectedAppointment(); ok {
				m.grabbedID = a.ID
				m.showMessage(fmt.Sprintf("Moving %q - press m on the target day", a.Title))
			}
		} else {
			m.dropGrabbed()
		}

	case "c":
		m.cycleColor()

	case "r":
		m.store.Reload()
		m.refreshGrid(false)
		m.showMessage("Refreshed")
	}

	return m, nil
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = modeGrid
		return m, nil

	case tea.KeyEnter:
		if m.inputBuffer != "" {
			m.saveEditorEntry()
		}
		m.mode = modeGrid
		return m, nil

	case tea.KeyBackspace:
		if m.cursorPos > 0 {
			m.inputBuffer = m.inputBuffer[:m.cursorPos-1] + m.inputBuffer[m.cursorPos:]
			m.cursorPos--
		}

	case tea.KeyLeft:
		if m.cursorPos > 0 {
			m.cursorPos--
		}

	case tea.KeyRight:
		if m.cursorPos < len(m.inputBuffer) {
			m.cursorPos++
		}

	case tea.KeySpace:
		m.inputBuffer = m.inputBuffer[:m.cursorPos] + " " + m.inputBuffer[m.cursorPos:]
		m.cursorPos++

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.inputBuffer = m.inputBuffer[:m.cursorPos] + string(r) + m.inputBuffer[m.cursorPos:]
			m.cursorPos++
		}
	}

	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.deleteSelected()
	}
	m.mode = modeGrid
	return m, nil
}

// saveEditorEntry parses the input line and hands the result to the
// store, either as a new appointment or as a replacement for the one
// being edited.
func (m *Model) saveEditorEntry() {
	parsed, err := m.entry.Parse(m.inputBuffer)
	if err != nil {
		m.showMessage(fmt.Sprintf("Parse error: %v", err))
		return
	}

	start, end := parsed.Start, parsed.End
	if !parsed.HasTime {
		start, end = "09:00", "10:00"
	}

	if m.editingID != "" {
		if prev, ok := m.store.Find(m.editingID); ok {
			prev.Title = parsed.Title
			prev.Date = parsed.Date
			prev.StartTime = start
			prev.EndTime = end
			if m.store.Update(prev) {
				m.showMessage("Appointment updated")
				return
			}
		}
		m.showMessage("Appointment not found")
		return
	}

	added := m.store.Add(appointment.Appointment{
		Title:     parsed.Title,
		Date:      parsed.Date,
		StartTime: start,
		EndTime:   end,
	})
	m.selectedDay = calendar.DateOnly(added.Date)
	m.selectedID = added.ID
	m.showMessage("Appointment added")
}

// nudgeSelected feeds a synthetic vertical drag distance to the
// rescheduling engine and stores the candidate it returns.
func (m *Model) nudgeSelected(yOffset float64) {
	a, ok := m.selectedAppointment()
	if !ok {
		return
	}

	candidate, changed := calendar.ShiftTime(a, yOffset)
	if !changed {
		return
	}

	if updated, ok := m.store.UpdateTime(a.ID, candidate.StartTime, candidate.EndTime); ok {
		m.showMessage(fmt.Sprintf("%s - %s", updated.StartTime, updated.EndTime))
	} else {
		m.showMessage("Appointment not found")
	}
}

// dropGrabbed completes a grab-and-move: the grabbed appointment keeps
// its times and its time of day, only the calendar day changes.
func (m *Model) dropGrabbed() {
	id := m.grabbedID
	m.grabbedID = ""

	a, ok := m.store.Find(id)
	if !ok {
		m.showMessage("Appointment not found")
		return
	}

	candidate := calendar.MoveToDay(a, m.selectedDay)
	if moved, ok := m.store.Move(a.ID, candidate.Date); ok {
		m.selectedID = moved.ID
		m.showMessage(fmt.Sprintf("Moved to %s", moved.Date.Format(m.config.DateFormat)))
	} else {
		m.showMessage("Appointment not found")
	}
}

func (m *Model) deleteSelected() {
	a, ok := m.selectedAppointment()
	if !ok {
		return
	}
	if m.store.Delete(a.ID) {
		m.selectedID = ""
		m.showMessage("Appointment deleted")
	} else {
		m.showMessage("Appointment not found")
	}
}

func (m *Model) cycleColor() {
	a, ok := m.selectedAppointment()
	if !ok {
		return
	}
	a.Color = nextPaletteColor(a.Color)
	m.store.Update(a)
}

// moveSelection shifts the selected day, navigating when the cursor
// leaves the displayed period.
func (m *Model) moveSelection(days int) {
	m.selectedDay = m.selectedDay.AddDate(0, 0, days)
	m.selectedID = ""

	if !containsDay(m.snapshot.Days, m.selectedDay) {
		m.nav.SetAnchor(m.selectedDay)
		m.refreshGrid(false)
	}
}

func (m *Model) cycleAppointment(dir int) {
	appts := m.dayAppointments(m.selectedDay)
	if len(appts) == 0 {
		m.selectedID = ""
		return
	}

	current := -1
	for i, a := range appts {
		if a.ID == m.selectedID {
			current = i
			break
		}
	}

	next := (current + dir + len(appts)) % len(appts)
	m.selectedID = appts[next].ID
}

// refreshGrid re-derives the snapshot. When snap is true the selection
// follows the anchor (period jumps); otherwise it is only pulled back
// inside the grid if it fell out.
func (m *Model) refreshGrid(snap bool) {
	m.snapshot = m.nav.Snapshot()
	if snap || !containsDay(m.snapshot.Days, m.selectedDay) {
		m.selectedDay = m.snapshot.Anchor
		m.selectedID = ""
	}
}

func (m *Model) selectedAppointment() (appointment.Appointment, bool) {
	appts := m.dayAppointments(m.selectedDay)
	if len(appts) == 0 {
		return appointment.Appointment{}, false
	}

	for _, a := range appts {
		if a.ID == m.selectedID {
			return a, true
		}
	}

	// Default to the earliest appointment of the day.
	m.selectedID = appts[0].ID
	return appts[0], true
}

func (m *Model) showMessage(msg string) {
	m.message = msg
	if m.messageTimer != nil {
		m.messageTimer.Stop()
	}
	m.messageTimer = time.AfterFunc(3*time.Second, func() {
		m.message = ""
	})
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.config.RefreshRate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Message types
type tickMsg struct{}
type messageTimeoutMsg struct{}
