package storage

import (
	"encoding/json"
	"fmt"

	"github.com/sandeepkv93/daygrid/internal/model"
)

// snapshotTask is the canonical wire shape of one task. Field names match the
// legacy browser snapshot so old slots remain readable.
type snapshotTask struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	CreatedAt int64    `json:"createdAt"`
	DueDate   string   `json:"dueDate"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Subtasks  []string `json:"subtasks"`
}

// RawTask is one tolerantly-decoded snapshot record. Every field is kept as
// raw JSON so the store can substitute per-field defaults without dropping
// the record wholesale.
type RawTask struct {
	ID        json.RawMessage `json:"id"`
	Text      json.RawMessage `json:"text"`
	Completed json.RawMessage `json:"completed"`
	CreatedAt json.RawMessage `json:"createdAt"`
	DueDate   json.RawMessage `json:"dueDate"`
	StartTime json.RawMessage `json:"startTime"`
	EndTime   json.RawMessage `json:"endTime"`
	Subtasks  json.RawMessage `json:"subtasks"`
}

// EncodeTasks serializes the full task list as the snapshot blob.
func EncodeTasks(tasks []model.Task) (string, error) {
	out := make([]snapshotTask, 0, len(tasks))
	for _, t := range tasks {
		subtasks := t.Subtasks
		if subtasks == nil {
			subtasks = make([]string, 0)
		}
		out = append(out, snapshotTask{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			CreatedAt: t.CreatedAt,
			DueDate:   t.DueDate,
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
			Subtasks:  subtasks,
		})
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(payload), nil
}

// DecodeTasks parses a snapshot blob into raw records. It errors only when
// the payload is not a JSON list; a malformed element degrades to an empty
// RawTask whose fields all fall back to defaults during normalization.
func DecodeTasks(blob string) ([]RawTask, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &elements); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	out := make([]RawTask, 0, len(elements))
	for _, element := range elements {
		var raw RawTask
		if err := json.Unmarshal(element, &raw); err != nil {
			raw = RawTask{}
		}
		out = append(out, raw)
	}
	return out, nil
}

// StringValue decodes raw as a JSON string.
func StringValue(raw json.RawMessage) (string, bool) {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return "", false
	}
	return s, true
}

// BoolValue decodes raw as a JSON boolean; anything else reads as false.
func BoolValue(raw json.RawMessage) bool {
	var b bool
	if raw == nil || json.Unmarshal(raw, &b) != nil {
		return false
	}
	return b
}

// NumberValue decodes raw as a JSON number.
func NumberValue(raw json.RawMessage) (float64, bool) {
	var n float64
	if raw == nil || json.Unmarshal(raw, &n) != nil {
		return 0, false
	}
	return n, true
}

// legacySubtask is the object-shaped subtask variant written by old
// snapshots: {"text": "..."} instead of a plain string.
type legacySubtask struct {
	Text *string `json:"text"`
}

// SubtaskValues decodes raw as the subtask list, accepting both the plain
// string variant and the legacy object variant and discarding anything else.
// Entries are returned untrimmed; the store normalizes them.
func SubtaskValues(raw json.RawMessage) []string {
	var elements []json.RawMessage
	if raw == nil || json.Unmarshal(raw, &elements) != nil {
		return nil
	}
	out := make([]string, 0, len(elements))
	for _, element := range elements {
		var plain string
		if json.Unmarshal(element, &plain) == nil {
			out = append(out, plain)
			continue
		}
		var legacy legacySubtask
		if json.Unmarshal(element, &legacy) == nil && legacy.Text != nil {
			out = append(out, *legacy.Text)
		}
	}
	return out
}
