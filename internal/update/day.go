package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/daygrid/internal/commands"
	"github.com/sandeepkv93/daygrid/internal/model"
	"github.com/sandeepkv93/daygrid/internal/session"
)

func (m Model) handleDayKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Day.CaptureMode {
		return m.handleQuickAddKey(msg)
	}

	visible := session.VisibleTasks(m.Store.Tasks(), m.Session.SelectedDate)
	switch msg.String() {
	case "up", "k":
		if m.Day.Cursor > 0 {
			m.Day.Cursor--
		}
	case "down", "j":
		if m.Day.Cursor < len(visible)-1 {
			m.Day.Cursor++
		}
	case "a":
		m.Day.CaptureMode = true
		m.quickAddInput.Focus()
		m.Status = StatusBar{Text: "quick add: type a title, enter to save"}
	case m.Keys.Toggle:
		if task, ok := cursorTask(visible, m.Day.Cursor); ok {
			m.Store.Toggle(task.ID)
		}
	case m.Keys.Delete:
		if task, ok := cursorTask(visible, m.Day.Cursor); ok {
			m.Store.Remove(task.ID)
			if m.Day.Cursor > 0 {
				m.Day.Cursor--
			}
			m.Status = StatusBar{Text: "task deleted"}
		}
	case m.Keys.Clear:
		stats := session.ComputeStats(m.Store.Tasks(), m.Session.SelectedDate)
		if stats.SelectedCompleted == 0 {
			m.Status = StatusBar{Text: "nothing completed on this day"}
			break
		}
		m.Store.ClearCompleted(m.Session.SelectedDate)
		m.Day.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %d completed", stats.SelectedCompleted)}
	}
	return m, nil
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Day.CaptureMode = false
		m.quickAddInput.Blur()
		return m, nil
	case "enter":
		return m.submitQuickAdd(), nil
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

// submitQuickAdd merges the pending draft with the quick-entry line and
// commits a task. A pending draft's title wins over the typed text (the
// input only shows the draft preview then); with no draft and no text the
// detail editor opens instead. Validation failures set an error status and
// leave the store untouched.
func (m Model) submitQuickAdd() Model {
	parsed := commands.ParseQuickAdd(m.quickAddInput.Value())

	title := m.Session.Draft.Title
	if strings.TrimSpace(title) == "" {
		title = parsed.Title
	}
	if strings.TrimSpace(title) == "" {
		m.openEditor()
		return m
	}

	dueDate := parsed.DueDate
	if dueDate == "" {
		dueDate = m.Session.SelectedDate
	}
	if err := model.ValidateTimeRange(parsed.StartTime, parsed.EndTime); err != nil {
		m.Status = StatusBar{Text: "error: end time is before start time", IsError: true}
		return m
	}

	m.Session.SelectDate(dueDate)
	m.Store.Add(title, dueDate, parsed.StartTime, parsed.EndTime, m.Session.Draft.Subtasks)
	m.Session.ResetDraft()
	m.quickAddInput.SetValue("")
	m.Day.CaptureMode = false
	m.quickAddInput.Blur()
	m.Day.Cursor = 0
	m.Calendar.Cursor = cursorForDate(m.Session, dueDate)
	m.Status = StatusBar{Text: fmt.Sprintf("added %q on %s", title, dueDate)}
	return m
}

func cursorTask(visible []model.Task, cursor int) (model.Task, bool) {
	if cursor < 0 || cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[cursor], true
}
