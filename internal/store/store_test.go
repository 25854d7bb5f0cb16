package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/daygrid/internal/storage"
)

const testDate = "2024-03-05"

var testNow = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, slot storage.Slot) *Store {
	t.Helper()
	if slot == nil {
		slot = storage.NewMemorySlot()
	}
	seq := 0
	return New(slot,
		WithClock(NewFakeClock(testNow)),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
}

func TestLoadMissingSnapshotYieldsEmpty(t *testing.T) {
	s := newTestStore(t, nil)
	s.Load(testDate)
	assert.Empty(t, s.Tasks())
}

func TestLoadCorruptSnapshotYieldsEmpty(t *testing.T) {
	payloads := []string{`{"not":"a list"}`, `"text"`, `42`, `garbage{{{`}
	for _, payload := range payloads {
		slot := storage.NewMemorySlot()
		require.NoError(t, slot.Set(DefaultSlotKey, payload))
		s := newTestStore(t, slot)
		s.Load(testDate)
		assert.Empty(t, s.Tasks(), "payload %q", payload)
	}
}

func TestLoadNormalizesPerField(t *testing.T) {
	blob := `[{
		"text": 42,
		"completed": "yes",
		"createdAt": "not a number",
		"dueDate": "03/05/2024",
		"startTime": "25:00",
		"endTime": "oops",
		"subtasks": ["  keep me  ", {"text":"legacy"}, {"other":"drop"}, "", 7]
	}]`
	slot := storage.NewMemorySlot()
	require.NoError(t, slot.Set(DefaultSlotKey, blob))

	s := newTestStore(t, slot)
	s.Load(testDate)

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	got := tasks[0]
	assert.Equal(t, "id-1", got.ID, "missing id gets a fresh one")
	assert.Equal(t, "", got.Text, "non-string text becomes empty")
	assert.False(t, got.Completed, "non-boolean completed coerces to false")
	assert.Equal(t, testNow.UnixMilli(), got.CreatedAt, "bad createdAt falls back to now")
	assert.Equal(t, testDate, got.DueDate, "bad dueDate falls back to selected date")
	assert.Equal(t, "", got.StartTime)
	assert.Equal(t, "", got.EndTime)
	assert.Equal(t, []string{"keep me", "legacy"}, got.Subtasks)
}

func TestLoadLeavesValidFieldsUntouched(t *testing.T) {
	blob := `[{
		"id": "keep-id",
		"text": "Buy milk",
		"completed": true,
		"createdAt": 1700000000000,
		"dueDate": "2024-04-01",
		"startTime": "09:00",
		"endTime": "10:00",
		"subtasks": ["a", "b"]
	}]`
	slot := storage.NewMemorySlot()
	require.NoError(t, slot.Set(DefaultSlotKey, blob))

	s := newTestStore(t, slot)
	s.Load(testDate)

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	got := tasks[0]
	assert.Equal(t, "keep-id", got.ID)
	assert.Equal(t, "Buy milk", got.Text)
	assert.True(t, got.Completed)
	assert.Equal(t, int64(1700000000000), got.CreatedAt)
	assert.Equal(t, "2024-04-01", got.DueDate)
	assert.Equal(t, "09:00", got.StartTime)
	assert.Equal(t, "10:00", got.EndTime)
	assert.Equal(t, []string{"a", "b"}, got.Subtasks)
}

func TestAddTrimsAndInsertsAtFront(t *testing.T) {
	s := newTestStore(t, nil)
	s.Add("first", testDate, "", "", nil)
	s.Add("  x  ", testDate, "09:00", "10:00", []string{" step ", ""})

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "x", tasks[0].Text, "newest task sits at index 0")
	assert.False(t, tasks[0].Completed)
	assert.Equal(t, []string{"step"}, tasks[0].Subtasks)
	assert.Equal(t, "first", tasks[1].Text)
}

func TestAddEmptyTextIsNoOp(t *testing.T) {
	slot := storage.NewMemorySlot()
	s := newTestStore(t, slot)
	s.Add("   ", testDate, "", "", nil)
	assert.Empty(t, s.Tasks())
	_, ok, err := slot.Get(DefaultSlotKey)
	require.NoError(t, err)
	assert.False(t, ok, "no persistence on rejected add")
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := newTestStore(t, nil)
	s.Add("task", testDate, "", "", nil)
	id := s.Tasks()[0].ID

	s.Toggle(id)
	assert.True(t, s.Tasks()[0].Completed)
	s.Toggle(id)
	assert.False(t, s.Tasks()[0].Completed)

	s.Toggle("no-such-id")
	assert.False(t, s.Tasks()[0].Completed, "unknown id is a no-op")
}

func TestRemove(t *testing.T) {
	s := newTestStore(t, nil)
	s.Add("a", testDate, "", "", nil)
	s.Add("b", testDate, "", "", nil)
	id := s.Tasks()[1].ID

	s.Remove(id)
	require.Len(t, s.Tasks(), 1)
	assert.Equal(t, "b", s.Tasks()[0].Text)

	s.Remove("no-such-id")
	assert.Len(t, s.Tasks(), 1)
}

func TestClearCompletedOnlyTouchesSelectedDate(t *testing.T) {
	s := newTestStore(t, nil)
	s.Add("done today", testDate, "", "", nil)
	s.Add("open today", testDate, "", "", nil)
	s.Add("done tomorrow", "2024-03-06", "", "", nil)
	s.Toggle(s.Tasks()[2].ID) // done today
	s.Toggle(s.Tasks()[0].ID) // done tomorrow

	s.ClearCompleted(testDate)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "done tomorrow", tasks[0].Text, "completed task on another date survives")
	assert.Equal(t, "open today", tasks[1].Text)
}

func TestClearCompletedSkipsWriteWhenNothingCleared(t *testing.T) {
	slot := storage.NewMemorySlot()
	s := newTestStore(t, slot)
	s.Add("open", testDate, "", "", nil)
	before, _, err := slot.Get(DefaultSlotKey)
	require.NoError(t, err)

	require.NoError(t, slot.Set(DefaultSlotKey, before+" sentinel"))
	s.ClearCompleted(testDate)

	after, _, err := slot.Get(DefaultSlotKey)
	require.NoError(t, err)
	assert.Equal(t, before+" sentinel", after, "no redundant write when the list did not shrink")
}

func TestCountByDate(t *testing.T) {
	s := newTestStore(t, nil)
	s.Add("a", testDate, "", "", nil)
	s.Add("b", testDate, "", "", nil)
	s.Add("c", "2024-03-06", "", "", nil)

	assert.Equal(t, 2, s.CountByDate(testDate))
	assert.Equal(t, 1, s.CountByDate("2024-03-06"))
	assert.Equal(t, 0, s.CountByDate("2024-03-07"))
}

func TestMutationsPersistRoundTrip(t *testing.T) {
	slot := storage.NewMemorySlot()
	s := newTestStore(t, slot)
	s.Add("persisted", testDate, "09:00", "10:00", []string{"step"})
	s.Toggle(s.Tasks()[0].ID)

	reloaded := newTestStore(t, slot)
	reloaded.Load(testDate)
	tasks := reloaded.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "persisted", tasks[0].Text)
	assert.True(t, tasks[0].Completed)
	assert.Equal(t, "09:00", tasks[0].StartTime)
	assert.Equal(t, []string{"step"}, tasks[0].Subtasks)
}
