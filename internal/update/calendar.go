package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/daygrid/internal/datekey"
	"github.com/sandeepkv93/daygrid/internal/session"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case m.Keys.PrevMonth, "left":
		m.shiftVisibleMonth(-1)
	case m.Keys.NextMonth, "right":
		m.shiftVisibleMonth(1)
	case "up", "k":
		m.moveCalendarCursor(-7)
	case "down", "j":
		m.moveCalendarCursor(7)
	case "shift+left", "b":
		m.moveCalendarCursor(-1)
	case "shift+right", "w":
		m.moveCalendarCursor(1)
	case m.Keys.SelectCell:
		m.selectCursorCell()
	case "t":
		m.Session.SelectDate(m.Session.Today)
		m.Calendar.Cursor = cursorForDate(m.Session, m.Session.SelectedDate)
		m.Day.Cursor = 0
		m.Status = StatusBar{Text: "jumped to today"}
	}
	return m
}

// shiftVisibleMonth pans the calendar by one month. The selection stays put;
// only the grid and its cursor move.
func (m *Model) shiftVisibleMonth(delta int) {
	m.Session.NavigateMonth(delta)
	m.clampCalendarCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("calendar: %s", m.monthLabel())}
}

func (m *Model) moveCalendarCursor(delta int) {
	next := m.Calendar.Cursor + delta
	if next < 0 || next >= session.GridCells {
		return
	}
	m.Calendar.Cursor = next
}

func (m *Model) clampCalendarCursor() {
	if m.Calendar.Cursor < 0 {
		m.Calendar.Cursor = 0
	}
	if m.Calendar.Cursor >= session.GridCells {
		m.Calendar.Cursor = session.GridCells - 1
	}
}

// selectCursorCell selects the cell under the cursor. Selecting an
// outside-month cell re-bases the visible month, so the grid pans to follow.
func (m *Model) selectCursorCell() {
	cells := m.Session.MonthGrid(m.Store.CountByDate)
	if m.Calendar.Cursor < 0 || m.Calendar.Cursor >= len(cells) {
		return
	}
	cell := cells[m.Calendar.Cursor]
	m.Session.SelectDate(cell.Date)
	m.Calendar.Cursor = cursorForDate(m.Session, cell.Date)
	m.Day.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("selected %s (%d tasks)", cell.Date, cell.TaskCount)}
}

func (m Model) monthLabel() string {
	return fmt.Sprintf("%04d-%02d", m.Session.VisibleYear, int(m.Session.VisibleMonth))
}

// cursorForDate maps a date key onto its grid index, or 0 when the date
// falls outside the visible 6x7 block.
func cursorForDate(sess session.State, date string) int {
	if !datekey.IsValidDateKey(date) {
		return 0
	}
	start := datekey.GridStart(sess.VisibleYear, sess.VisibleMonth)
	// Walk day by day instead of dividing a duration, so DST-shortened days
	// cannot skew the index.
	cell := start
	for i := 0; i < session.GridCells; i++ {
		if datekey.Format(cell) == date {
			return i
		}
		cell = cell.AddDate(0, 0, 1)
	}
	return 0
}
