// Package store owns the in-memory task list and is the sole writer to the
// persisted snapshot. Every successful mutation serializes the full list and
// overwrites the slot; there is no incremental diffing and no conflict
// detection (last writer wins).
package store

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/sandeepkv93/daygrid/internal/datekey"
	"github.com/sandeepkv93/daygrid/internal/model"
	"github.com/sandeepkv93/daygrid/internal/storage"
)

const DefaultSlotKey = "daygrid_tasks_v1"

type Store struct {
	slot  storage.Slot
	key   string
	clock Clock
	newID func() string
	log   zerolog.Logger
	tasks []model.Task
}

type Option func(*Store)

func WithClock(clock Clock) Option {
	return func(s *Store) { s.clock = clock }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

func WithSlotKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func New(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		key:   DefaultSlotKey,
		clock: RealClock{},
		newID: NewID,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot and normalizes it against selectedDate.
// A missing, unparsable, or non-list payload degrades to an empty list; the
// caller never sees an error for corrupt storage.
func (s *Store) Load(selectedDate string) {
	blob, ok, err := s.slot.Get(s.key)
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot read failed, starting empty")
		s.tasks = nil
		return
	}
	if !ok {
		s.tasks = nil
		return
	}
	raw, err := storage.DecodeTasks(blob)
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot unreadable, starting empty")
		s.tasks = nil
		return
	}
	s.tasks = s.normalize(raw, selectedDate)
	s.log.Debug().Int("tasks", len(s.tasks)).Msg("snapshot loaded")
}

// normalize rebuilds a valid task from each raw record, substituting the
// documented default for every malformed field. Records are repaired, never
// dropped.
func (s *Store) normalize(raw []storage.RawTask, selectedDate string) []model.Task {
	out := make([]model.Task, 0, len(raw))
	for _, r := range raw {
		task := model.Task{}

		if id, ok := storage.StringValue(r.ID); ok && id != "" {
			task.ID = id
		} else {
			task.ID = s.newID()
		}
		task.Text, _ = storage.StringValue(r.Text)
		task.Completed = storage.BoolValue(r.Completed)
		if created, ok := storage.NumberValue(r.CreatedAt); ok {
			task.CreatedAt = int64(created)
		} else {
			task.CreatedAt = s.clock.Now().UnixMilli()
		}
		if due, ok := storage.StringValue(r.DueDate); ok && datekey.IsValidDateKey(due) {
			task.DueDate = due
		} else {
			task.DueDate = selectedDate
		}
		if start, ok := storage.StringValue(r.StartTime); ok && datekey.IsValidTimeKey(start) {
			task.StartTime = start
		}
		if end, ok := storage.StringValue(r.EndTime); ok && datekey.IsValidTimeKey(end) {
			task.EndTime = end
		}
		task.Subtasks = model.NormalizeSubtasks(storage.SubtaskValues(r.Subtasks))

		out = append(out, task)
	}
	return out
}

// Add trims text and inserts a new task at the front of the list. An empty
// trimmed text is a silent no-op here; callers surface it as a validation
// failure at the input boundary.
func (s *Store) Add(text, dueDate, startTime, endTime string, subtasks []string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	task := model.Task{
		ID:        s.newID(),
		Text:      trimmed,
		Completed: false,
		CreatedAt: s.clock.Now().UnixMilli(),
		DueDate:   dueDate,
		StartTime: startTime,
		EndTime:   endTime,
		Subtasks:  model.NormalizeSubtasks(subtasks),
	}
	s.tasks = append([]model.Task{task}, s.tasks...)
	s.persist()
	s.log.Info().Str("id", task.ID).Str("due", task.DueDate).Msg("task added")
}

// Toggle flips the completed flag on the matching task. Unknown ids are a
// silent no-op: the state is already consistent.
func (s *Store) Toggle(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.persist()
			s.log.Info().Str("id", id).Bool("completed", s.tasks[i].Completed).Msg("task toggled")
			return
		}
	}
}

// Remove deletes the matching task. Unknown ids are a silent no-op.
func (s *Store) Remove(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			s.persist()
			s.log.Info().Str("id", id).Msg("task removed")
			return
		}
	}
}

// ClearCompleted removes every completed task due on selectedDate. It
// persists only when the list actually shrank, so a no-op clear never
// triggers a redundant write.
func (s *Store) ClearCompleted(selectedDate string) {
	kept := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.DueDate == selectedDate && t.Completed {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == len(s.tasks) {
		return
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	s.persist()
	s.log.Info().Str("date", selectedDate).Int("removed", removed).Msg("completed tasks cleared")
}

// CountByDate returns the number of tasks due on the given date key.
func (s *Store) CountByDate(dateKey string) int {
	count := 0
	for _, t := range s.tasks {
		if t.DueDate == dateKey {
			count++
		}
	}
	return count
}

// Tasks returns the current list, most-recent-first.
func (s *Store) Tasks() []model.Task {
	return s.tasks
}

func (s *Store) persist() {
	blob, err := storage.EncodeTasks(s.tasks)
	if err != nil {
		s.log.Error().Err(err).Msg("snapshot encode failed")
		return
	}
	if err := s.slot.Set(s.key, blob); err != nil {
		s.log.Error().Err(err).Msg("snapshot write failed")
	}
}
