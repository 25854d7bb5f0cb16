package session

import (
	"time"

	"github.com/sandeepkv93/daygrid/internal/datekey"
)

const GridCells = 42 // 6 full weeks, Sunday start

// Cell is one derived calendar-grid entry.
type Cell struct {
	Date       string
	Day        int
	InMonth    bool
	IsToday    bool
	IsSelected bool
	TaskCount  int
}

// BuildMonthGrid derives the 42-cell grid for the visible month. The grid
// starts on the Sunday on or before the 1st, so it always includes leading
// days from the prior month and extends into the next one.
func BuildMonthGrid(year int, month time.Month, selected, today string, countByDate func(string) int) []Cell {
	start := datekey.GridStart(year, month)
	cells := make([]Cell, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		day := start.AddDate(0, 0, i)
		key := datekey.Format(day)
		cells = append(cells, Cell{
			Date:       key,
			Day:        day.Day(),
			InMonth:    day.Month() == month,
			IsToday:    key == today,
			IsSelected: key == selected,
			TaskCount:  countByDate(key),
		})
	}
	return cells
}

// MonthGrid builds the grid for the state's visible month.
func (s State) MonthGrid(countByDate func(string) int) []Cell {
	return BuildMonthGrid(s.VisibleYear, s.VisibleMonth, s.SelectedDate, s.Today, countByDate)
}
