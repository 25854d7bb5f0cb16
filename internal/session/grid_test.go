package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noTasks(string) int { return 0 }

func TestBuildMonthGridShape(t *testing.T) {
	cells := BuildMonthGrid(2024, time.March, "2024-03-05", "2024-03-05", noTasks)
	require.Len(t, cells, GridCells)

	// March 2024 opens on a Friday, so the grid leads with Feb 25 (Sunday).
	assert.Equal(t, "2024-02-25", cells[0].Date)
	assert.False(t, cells[0].InMonth)
	assert.Equal(t, "2024-03-01", cells[5].Date)
	assert.True(t, cells[5].InMonth)
	// The 6x7 block always runs into the following month.
	assert.Equal(t, "2024-04-06", cells[GridCells-1].Date)
	assert.False(t, cells[GridCells-1].InMonth)
}

func TestBuildMonthGridFlags(t *testing.T) {
	cells := BuildMonthGrid(2024, time.March, "2024-03-05", "2024-03-09", noTasks)
	var selected, today int
	for _, cell := range cells {
		if cell.IsSelected {
			selected++
			assert.Equal(t, "2024-03-05", cell.Date)
		}
		if cell.IsToday {
			today++
			assert.Equal(t, "2024-03-09", cell.Date)
		}
	}
	assert.Equal(t, 1, selected)
	assert.Equal(t, 1, today)
}

func TestBuildMonthGridTodayOutsideGrid(t *testing.T) {
	cells := BuildMonthGrid(2024, time.July, "2024-07-01", "2024-03-09", noTasks)
	for _, cell := range cells {
		assert.False(t, cell.IsToday, "today falls outside the visible grid")
	}
}

func TestBuildMonthGridCounts(t *testing.T) {
	counts := map[string]int{"2024-03-05": 3, "2024-02-25": 1}
	cells := BuildMonthGrid(2024, time.March, "2024-03-05", "2024-03-05", func(key string) int {
		return counts[key]
	})
	assert.Equal(t, 1, cells[0].TaskCount, "leading outside-month cell still counts tasks")
	byDate := make(map[string]int)
	for _, cell := range cells {
		byDate[cell.Date] = cell.TaskCount
	}
	assert.Equal(t, 3, byDate["2024-03-05"])
	assert.Equal(t, 0, byDate["2024-03-06"])
}

func TestGridStartsOnSunday(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		cells := BuildMonthGrid(2024, month, "", "", noTasks)
		require.Len(t, cells, GridCells)
		first, err := time.ParseInLocation("2006-01-02", cells[0].Date, time.Local)
		require.NoError(t, err)
		assert.Equal(t, time.Sunday, first.Weekday(), "month %s", month)
	}
}
