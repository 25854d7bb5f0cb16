package datekey

import (
	"testing"
	"time"
)

func TestFormatParseRoundTrip(t *testing.T) {
	cases := []string{"2024-03-05", "1999-12-31", "2024-01-01"}
	for _, key := range cases {
		if !IsValidDateKey(key) {
			t.Fatalf("expected %q to be a valid date key", key)
		}
		if got := Format(Parse(key)); got != key {
			t.Fatalf("round trip of %q = %q", key, got)
		}
	}
}

func TestParseOverflowRollsForward(t *testing.T) {
	// Pattern-valid but calendar-impossible keys roll into the next month.
	got := Format(Parse("2024-02-30"))
	if got != "2024-03-01" {
		t.Fatalf("expected 2024-02-30 to roll to 2024-03-01, got %q", got)
	}
}

func TestIsValidDateKey(t *testing.T) {
	valid := []string{"2024-03-05", "2024-02-30", "0001-01-01"}
	for _, key := range valid {
		if !IsValidDateKey(key) {
			t.Fatalf("expected %q valid", key)
		}
	}
	invalid := []string{"", "2024-3-5", "2024/03/05", "20240305", "2024-03-05 ", "yyyy-mm-dd"}
	for _, key := range invalid {
		if IsValidDateKey(key) {
			t.Fatalf("expected %q invalid", key)
		}
	}
}

func TestIsValidTimeKey(t *testing.T) {
	valid := []string{"00:00", "09:30", "19:59", "23:59"}
	for _, key := range valid {
		if !IsValidTimeKey(key) {
			t.Fatalf("expected %q valid", key)
		}
	}
	invalid := []string{"", "24:00", "12:60", "9:30", "12:5", "12-30", "12:30:00"}
	for _, key := range invalid {
		if IsValidTimeKey(key) {
			t.Fatalf("expected %q invalid", key)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 5, 17, 45, 12, 999, time.Local)
	got := StartOfDay(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", got)
	}
	if Format(got) != "2024-03-05" {
		t.Fatalf("unexpected day: %v", got)
	}
}

func TestGridStart(t *testing.T) {
	// March 2024 starts on a Friday; the grid opens on Sunday Feb 25.
	got := GridStart(2024, time.March)
	if Format(got) != "2024-02-25" {
		t.Fatalf("grid start for 2024-03 = %q", Format(got))
	}
	// September 2024 starts on a Sunday; the grid opens on the 1st itself.
	got = GridStart(2024, time.September)
	if Format(got) != "2024-09-01" {
		t.Fatalf("grid start for 2024-09 = %q", Format(got))
	}
}

func TestAddMonthsRollover(t *testing.T) {
	y, m := AddMonths(2024, time.December, 1)
	if y != 2025 || m != time.January {
		t.Fatalf("expected 2025-01, got %d-%02d", y, int(m))
	}
	y, m = AddMonths(2024, time.January, -1)
	if y != 2023 || m != time.December {
		t.Fatalf("expected 2023-12, got %d-%02d", y, int(m))
	}
}

func TestFormatHuman(t *testing.T) {
	if got := FormatHuman("2024-03-05"); got != "Mar 5, Tue" {
		t.Fatalf("unexpected label: %q", got)
	}
}
