package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		ID:        "task-1",
		Text:      "Buy milk",
		CreatedAt: 1709600000000,
		DueDate:   "2024-03-05",
		StartTime: "09:00",
		EndTime:   "10:30",
		Subtasks:  []string{"check fridge", "walk to store"},
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBadFields(t *testing.T) {
	base := Task{ID: "task-1", Text: "Buy milk", DueDate: "2024-03-05"}

	task := base
	task.Text = "   "
	if err := task.Validate(); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got: %v", err)
	}

	task = base
	task.DueDate = "03/05/2024"
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for malformed due date")
	}

	task = base
	task.StartTime = "10:00"
	task.EndTime = "09:00"
	if err := task.Validate(); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got: %v", err)
	}
}

func TestValidateTimeRange(t *testing.T) {
	if err := ValidateTimeRange("09:00", "09:00"); err != nil {
		t.Fatalf("equal start and end should pass: %v", err)
	}
	if err := ValidateTimeRange("", "09:00"); err != nil {
		t.Fatalf("unset start should pass: %v", err)
	}
	if err := ValidateTimeRange("10:00", ""); err != nil {
		t.Fatalf("unset end should pass: %v", err)
	}
	if err := ValidateTimeRange("10:00", "09:00"); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got: %v", err)
	}
}

func TestNormalizeSubtasks(t *testing.T) {
	got := NormalizeSubtasks([]string{"  collect sources ", "", "   ", "write outline"})
	want := []string{"collect sources", "write outline"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalize = %#v, want %#v", got, want)
	}
	if got := NormalizeSubtasks(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %#v", got)
	}
}
