package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/daygrid/internal/commands"
	"github.com/sandeepkv93/daygrid/internal/model"
	"github.com/sandeepkv93/daygrid/internal/session"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.commandInput.Blur()
		m.Status = StatusBar{}
		return m, nil
	case "enter":
		return m.runPaletteCommand(), nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) runPaletteCommand() Model {
	cmd, err := commands.Parse(m.commandInput.Value())
	if err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
		return m
	}

	result, err := commands.Execute(cmd, commands.Handlers{
		Add:   m.paletteAdd,
		Goto:  m.paletteGoto,
		Month: m.paletteMonth,
		Clear: m.paletteClear,
	})
	if err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
		return m
	}

	m.Palette.Active = false
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	m.Status = StatusBar{Text: result.Message}
	m.Calendar.Cursor = cursorForDate(m.Session, m.Session.SelectedDate)
	m.Day.Cursor = 0
	return m
}

// Handlers close over a pointer receiver so palette commands mutate this
// model value before it is returned to the runtime.

func (m *Model) paletteAdd(args commands.AddArgs) (commands.Result, error) {
	if err := model.ValidateTimeRange(args.StartTime, args.EndTime); err != nil {
		return commands.Result{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: "end time is before start time",
		}
	}
	dueDate := args.DueDate
	if dueDate == "" {
		dueDate = m.Session.SelectedDate
	}
	m.Session.SelectDate(dueDate)
	m.Store.Add(args.Title, dueDate, args.StartTime, args.EndTime, nil)
	return commands.Result{Message: fmt.Sprintf("added %q on %s", args.Title, dueDate)}, nil
}

func (m *Model) paletteGoto(args commands.GotoArgs) (commands.Result, error) {
	m.Session.SelectDate(args.Date)
	return commands.Result{Message: "selected " + args.Date}, nil
}

func (m *Model) paletteMonth(args commands.MonthArgs) (commands.Result, error) {
	m.Session.NavigateMonth(args.Delta)
	return commands.Result{Message: fmt.Sprintf("calendar: %04d-%02d", m.Session.VisibleYear, int(m.Session.VisibleMonth))}, nil
}

func (m *Model) paletteClear() (commands.Result, error) {
	stats := session.ComputeStats(m.Store.Tasks(), m.Session.SelectedDate)
	if stats.SelectedCompleted == 0 {
		return commands.Result{Message: "nothing completed on this day"}, nil
	}
	m.Store.ClearCompleted(m.Session.SelectedDate)
	return commands.Result{Message: fmt.Sprintf("cleared %d completed", stats.SelectedCompleted)}, nil
}
