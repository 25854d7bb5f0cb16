package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/daygrid/internal/datekey"
	"github.com/sandeepkv93/daygrid/internal/session"
	"github.com/sandeepkv93/daygrid/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Editor.Active {
			return m.handleEditorKey(typed)
		}
		if m.Day.CaptureMode && m.CurrentView == ViewDay {
			if typed.String() == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.handleQuickAddKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Day:
			m.CurrentView = ViewDay
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			m.Calendar.Cursor = cursorForDate(m.Session, m.Session.SelectedDate)
			return m, nil
		case m.Keys.Editor:
			m.openEditor()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.CurrentView == ViewCalendar {
			return m.handleCalendarKey(typed), nil
		}
		return m.handleDayKey(typed)
	case SwitchViewMsg:
		if typed.View == ViewDay || typed.View == ViewCalendar {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	overlay := ""
	switch {
	case m.Editor.Active:
		overlay = views.RenderEditorPanel(views.EditorData{
			TitleView:   m.editorTitleInput.View(),
			Subtasks:    m.Editor.Subtasks,
			EntryView:   m.editorEntryInput.View(),
			ErrorText:   m.Editor.Err,
			TitleActive: m.Editor.TitleActive,
		})
	case m.Palette.Active:
		overlay = views.RenderCommandPalette(views.PaletteData{Active: true, Input: m.commandInput.Value()})
	case m.HelpVisible:
		overlay = views.RenderMarkdown(helpMarkdown)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("daygrid | %s | selected: %s", m.monthLabel(), m.Session.SelectedDate),
		LeftPane:   m.renderCalendarPane(),
		RightPane:  m.renderDayPane(),
		StatusLine: status,
		Overlay:    overlay,
		Footer: fmt.Sprintf("keys: %s day | %s cal | %s editor | / cmd | %s help | %s quit",
			m.Keys.Day, m.Keys.Calendar, m.Keys.Editor, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderCalendarPane() string {
	cells := m.Session.MonthGrid(m.Store.CountByDate)
	data := views.CalendarPanelData{MonthLabel: m.monthLabel()}
	for i, cell := range cells {
		data.Cells = append(data.Cells, views.CalendarCellData{
			Day:        cell.Day,
			InMonth:    cell.InMonth,
			IsToday:    cell.IsToday,
			IsSelected: cell.IsSelected,
			HasCursor:  m.CurrentView == ViewCalendar && i == m.Calendar.Cursor,
			TaskCount:  cell.TaskCount,
		})
	}
	return views.RenderCalendarPanel(data)
}

func (m Model) renderDayPane() string {
	visible := session.VisibleTasks(m.Store.Tasks(), m.Session.SelectedDate)
	stats := session.ComputeStats(m.Store.Tasks(), m.Session.SelectedDate)

	data := views.DayPanelData{
		DateLabel:    datekey.FormatHuman(m.Session.SelectedDate),
		QuickAddView: m.quickAddInput.View(),
		Total:        stats.Total,
		Completed:    stats.Completed,
		ClearEnabled: stats.SelectedCompleted > 0,
	}
	for i, task := range visible {
		data.Items = append(data.Items, views.DayItemData{
			Text:      task.Text,
			Completed: task.Completed,
			Meta:      timeMeta(task.StartTime, task.EndTime),
			Subtasks:  task.Subtasks,
			HasCursor: m.CurrentView == ViewDay && !m.Day.CaptureMode && i == m.Day.Cursor,
		})
	}
	return views.RenderDayPanel(data)
}

func timeMeta(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + "-" + end
	case start != "":
		return "from " + start
	case end != "":
		return "until " + end
	default:
		return ""
	}
}
