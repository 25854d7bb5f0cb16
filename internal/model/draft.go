package model

import (
	"fmt"
	"strings"
)

// Draft is an in-progress task description held before final submission.
// It is transient state, never persisted.
type Draft struct {
	Title    string
	Subtasks []string
}

func (d Draft) IsEmpty() bool {
	return strings.TrimSpace(d.Title) == "" && len(d.Subtasks) == 0
}

// Clone returns an independent copy for a detail editor to work on, so
// cancelled edits never leak back into the pending draft.
func (d Draft) Clone() Draft {
	out := Draft{Title: d.Title}
	if len(d.Subtasks) > 0 {
		out.Subtasks = append([]string(nil), d.Subtasks...)
	}
	return out
}

// Preview renders the one-line summary shown in the quick-add field:
// the title alone, or "<title> (<N> steps)" when subtasks exist.
func (d Draft) Preview() string {
	if strings.TrimSpace(d.Title) == "" {
		return ""
	}
	if len(d.Subtasks) == 0 {
		return d.Title
	}
	return fmt.Sprintf("%s (%d steps)", d.Title, len(d.Subtasks))
}

// CommitDraft validates and normalizes an edited draft. An empty trimmed
// title is a user-facing validation failure, not a silent fallback.
func CommitDraft(title string, subtasks []string) (Draft, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return Draft{}, ErrEmptyTitle
	}
	return Draft{Title: trimmed, Subtasks: NormalizeSubtasks(subtasks)}, nil
}
