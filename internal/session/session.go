// Package session holds the per-run UI state (selected day, visible month,
// pending draft) and the pure view models derived from it. View models never
// mutate; they are functions of the task list and this state.
package session

import (
	"time"

	"github.com/sandeepkv93/daygrid/internal/datekey"
	"github.com/sandeepkv93/daygrid/internal/model"
)

type State struct {
	SelectedDate string
	VisibleYear  int
	VisibleMonth time.Month
	Today        string
	Draft        model.Draft
}

// NewState fixes "today" from the given instant; daygrid sessions are short
// enough that the day is not re-read across midnight.
func NewState(now time.Time) State {
	day := datekey.StartOfDay(now)
	return State{
		SelectedDate: datekey.Format(day),
		VisibleYear:  day.Year(),
		VisibleMonth: day.Month(),
		Today:        datekey.Format(day),
	}
}

// SelectDate picks a day and re-bases the visible month to it, so selecting
// an outside-month cell pans the calendar. Invalid keys are ignored.
func (s *State) SelectDate(key string) {
	if !datekey.IsValidDateKey(key) {
		return
	}
	s.SelectedDate = key
	d := datekey.Parse(key)
	s.VisibleYear = d.Year()
	s.VisibleMonth = d.Month()
}

// NavigateMonth moves the visible month by delta calendar months without
// touching the selected day.
func (s *State) NavigateMonth(delta int) {
	s.VisibleYear, s.VisibleMonth = datekey.AddMonths(s.VisibleYear, s.VisibleMonth, delta)
}

// ResetDraft clears the pending draft after a successful submission.
func (s *State) ResetDraft() {
	s.Draft = model.Draft{}
}
