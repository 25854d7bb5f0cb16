package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/daygrid/internal/model"
)

func TestVisibleTasksFiltersBySelectedDate(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Text: "Buy milk", DueDate: "2024-03-05"},
	}
	got := VisibleTasks(tasks, "2024-03-05")
	require.Len(t, got, 1)
	assert.Equal(t, "Buy milk", got[0].Text)

	assert.Empty(t, VisibleTasks(tasks, "2024-03-06"))
}

func TestVisibleTasksPreservesStoreOrder(t *testing.T) {
	// Store order is most-recent-first: t2 was inserted after t1.
	tasks := []model.Task{
		{ID: "t2", Text: "second", DueDate: "2024-03-05"},
		{ID: "other", Text: "elsewhere", DueDate: "2024-03-06"},
		{ID: "t1", Text: "first", DueDate: "2024-03-05"},
	}
	got := VisibleTasks(tasks, "2024-03-05")
	require.Len(t, got, 2)
	assert.Equal(t, "t2", got[0].ID)
	assert.Equal(t, "t1", got[1].ID)
}

func TestComputeStats(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", DueDate: "2024-03-05", Completed: true},
		{ID: "2", DueDate: "2024-03-05"},
		{ID: "3", DueDate: "2024-03-06", Completed: true},
	}
	stats := ComputeStats(tasks, "2024-03-05")
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.SelectedCompleted)

	stats = ComputeStats(tasks, "2024-03-07")
	assert.Equal(t, 0, stats.SelectedCompleted, "zero disables clear-completed")
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, "2024-03-05")
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Completed)
	assert.Zero(t, stats.SelectedCompleted)
}
