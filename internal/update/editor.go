package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/daygrid/internal/model"
)

// openEditor populates the overlay from a copy of the pending draft, so
// cancelling never touches it.
func (m *Model) openEditor() {
	draft := m.Session.Draft.Clone()
	m.Editor = EditorState{
		Active:      true,
		TitleActive: true,
		Subtasks:    draft.Subtasks,
	}
	m.editorTitleInput.SetValue(draft.Title)
	m.editorTitleInput.Focus()
	m.editorEntryInput.SetValue("")
	m.editorEntryInput.Blur()
	m.Status = StatusBar{Text: "editing task details"}
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Editor = EditorState{}
		m.editorTitleInput.Blur()
		m.editorEntryInput.Blur()
		m.Status = StatusBar{Text: "editor closed, draft unchanged"}
		return m, nil
	case "tab":
		m.Editor.TitleActive = !m.Editor.TitleActive
		if m.Editor.TitleActive {
			m.editorTitleInput.Focus()
			m.editorEntryInput.Blur()
		} else {
			m.editorEntryInput.Focus()
			m.editorTitleInput.Blur()
		}
		return m, nil
	case "enter":
		if m.Editor.TitleActive {
			return m.commitEditor(), nil
		}
		entry := strings.TrimSpace(m.editorEntryInput.Value())
		if entry != "" {
			m.Editor.Subtasks = append(m.Editor.Subtasks, entry)
			m.editorEntryInput.SetValue("")
		}
		return m, nil
	case "backspace":
		if !m.Editor.TitleActive && m.editorEntryInput.Value() == "" && len(m.Editor.Subtasks) > 0 {
			m.Editor.Subtasks = m.Editor.Subtasks[:len(m.Editor.Subtasks)-1]
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.Editor.TitleActive {
		m.editorTitleInput, cmd = m.editorTitleInput.Update(msg)
	} else {
		m.editorEntryInput, cmd = m.editorEntryInput.Update(msg)
	}
	return m, cmd
}

// commitEditor validates the edited details and stores them as the pending
// draft; the quick-add field then shows the draft preview. The task itself
// is only created at quick-add submission.
func (m Model) commitEditor() Model {
	subtasks := m.Editor.Subtasks
	if entry := strings.TrimSpace(m.editorEntryInput.Value()); entry != "" {
		subtasks = append(subtasks, entry)
	}
	draft, err := model.CommitDraft(m.editorTitleInput.Value(), subtasks)
	if err != nil {
		if errors.Is(err, model.ErrEmptyTitle) {
			m.Editor.Err = "a task title is required"
		} else {
			m.Editor.Err = err.Error()
		}
		return m
	}
	m.Session.Draft = draft
	m.Editor = EditorState{}
	m.editorTitleInput.Blur()
	m.editorEntryInput.Blur()
	m.quickAddInput.SetValue(draft.Preview())
	m.Status = StatusBar{Text: fmt.Sprintf("draft ready: %s", draft.Preview())}
	return m
}
