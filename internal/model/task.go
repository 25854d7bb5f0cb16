package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/daygrid/internal/datekey"
)

var (
	ErrEmptyTitle       = errors.New("model: task title is required")
	ErrInvalidTimeRange = errors.New("model: end time is before start time")
)

// Task is one user-created item. StartTime and EndTime are either "" (unset)
// or valid HH:MM keys; Subtasks preserves insertion order and never contains
// empty entries.
type Task struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt int64 // milliseconds since epoch, provenance only
	DueDate   string
	StartTime string
	EndTime   string
	Subtasks  []string
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyTitle
	}
	if !datekey.IsValidDateKey(t.DueDate) {
		return fmt.Errorf("model: invalid due date %q", t.DueDate)
	}
	if t.StartTime != "" && !datekey.IsValidTimeKey(t.StartTime) {
		return fmt.Errorf("model: invalid start time %q", t.StartTime)
	}
	if t.EndTime != "" && !datekey.IsValidTimeKey(t.EndTime) {
		return fmt.Errorf("model: invalid end time %q", t.EndTime)
	}
	if err := ValidateTimeRange(t.StartTime, t.EndTime); err != nil {
		return err
	}
	for _, sub := range t.Subtasks {
		if strings.TrimSpace(sub) == "" {
			return errors.New("model: empty subtask entry")
		}
	}
	return nil
}

// ValidateTimeRange enforces start <= end when both keys are set. It is an
// input-boundary check: stored tasks are not re-checked after construction.
func ValidateTimeRange(start, end string) error {
	if start != "" && end != "" && end < start {
		return ErrInvalidTimeRange
	}
	return nil
}

// NormalizeSubtasks trims every entry and drops the empties, preserving order.
func NormalizeSubtasks(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
