package views

import (
	"fmt"
	"strings"
)

type CalendarCellData struct {
	Day        int
	InMonth    bool
	IsToday    bool
	IsSelected bool
	HasCursor  bool
	TaskCount  int
}

type CalendarPanelData struct {
	MonthLabel string
	Cells      []CalendarCellData
}

type DayItemData struct {
	Text      string
	Completed bool
	Meta      string
	Subtasks  []string
	HasCursor bool
}

type DayPanelData struct {
	DateLabel    string
	QuickAddView string
	Items        []DayItemData
	Total        int
	Completed    int
	ClearEnabled bool
}

type EditorData struct {
	TitleView   string
	Subtasks    []string
	EntryView   string
	ErrorText   string
	TitleActive bool
}

type PaletteData struct {
	Active bool
	Input  string
}

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar: " + data.MonthLabel + "\n")
	b.WriteString("actions: [h/l]month [arrows]move [enter]select\n")
	b.WriteString(weekdayHeader + "\n")

	for i, cell := range data.Cells {
		label := fmt.Sprintf("%2d", cell.Day)
		switch {
		case cell.HasCursor:
			label = "[" + strings.TrimSpace(label) + "]"
			if len(label) < 4 {
				label = " " + label
			}
		case cell.IsSelected:
			label = selectedStyle.Render(label)
		case cell.IsToday:
			label = todayStyle.Render(label)
		case !cell.InMonth:
			label = outsideStyle.Render(label)
		}
		b.WriteString(label)
		if cell.TaskCount > 0 {
			b.WriteString("*")
		} else {
			b.WriteString(" ")
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderDayPanel(data DayPanelData) string {
	var b strings.Builder
	b.WriteString("tasks: " + data.DateLabel + "\n")
	b.WriteString("actions: [a]add [e]editor [space]toggle [x]delete [C]clear-done\n")
	b.WriteString(data.QuickAddView + "\n")

	if len(data.Items) == 0 {
		b.WriteString("\n(no tasks for this day)\n")
	}
	for _, item := range data.Items {
		cursor := " "
		if item.HasCursor {
			cursor = ">"
		}
		check := "[ ]"
		text := item.Text
		if item.Completed {
			check = "[x]"
			text = doneStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s", cursor, check, text))
		if item.Meta != "" {
			b.WriteString("  " + outsideStyle.Render(item.Meta))
		}
		b.WriteString("\n")
		for _, sub := range item.Subtasks {
			b.WriteString("      - " + sub + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\ntotal: %d | completed: %d", data.Total, data.Completed))
	if !data.ClearEnabled {
		b.WriteString(" | clear-done: disabled")
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderEditorPanel(data EditorData) string {
	var b strings.Builder
	b.WriteString("task editor:\n")
	b.WriteString("keys: [tab]field [enter]add-step/save [backspace on empty]drop-step [esc]cancel\n")
	marker := func(active bool) string {
		if active {
			return ">"
		}
		return " "
	}
	b.WriteString(fmt.Sprintf("%s title: %s\n", marker(data.TitleActive), data.TitleView))
	b.WriteString("steps:\n")
	if len(data.Subtasks) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, sub := range data.Subtasks {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, sub))
	}
	b.WriteString(fmt.Sprintf("%s new step: %s\n", marker(!data.TitleActive), data.EntryView))
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText)
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderCommandPalette(data PaletteData) string {
	if !data.Active {
		return ""
	}
	return fmt.Sprintf("command: /%s", data.Input)
}
