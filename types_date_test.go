package brick

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2024-01-15", NewDate(2024, time.January, 15), false},
		{"2024-7-1", NewDate(2024, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2024-13-01", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-03-05"` {
		t.Errorf("marshal = %s, want %q", data, `"2024-03-05"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestMonthAddMonths(t *testing.T) {
	tests := []struct {
		start    Month
		add      int
		expected Month
	}{
		{NewMonth(2024, time.January), 1, NewMonth(2024, time.February)},
		{NewMonth(2024, time.December), 1, NewMonth(2025, time.January)},
		{NewMonth(2024, time.January), -1, NewMonth(2023, time.December)},
		{NewMonth(2024, time.June), -5, NewMonth(2024, time.January)},
		{NewMonth(2024, time.January), 0, NewMonth(2024, time.January)},
		{NewMonth(2024, time.March), -14, NewMonth(2023, time.January)},
	}

	for _, tt := range tests {
		if got := tt.start.AddMonths(tt.add); got != tt.expected {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.start, tt.add, got, tt.expected)
		}
	}
}

func TestMonthContains(t *testing.T) {
	m := NewMonth(2024, time.February)

	if !m.Contains(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)) {
		t.Error("leap day should be in 2024-02")
	}
	if m.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("March 1st should not be in 2024-02")
	}
	if !m.ContainsDate(MustParseDate("2024-02-01")) {
		t.Error("first of month should be in 2024-02")
	}
	if m.ContainsDate(MustParseDate("2025-02-10")) {
		t.Error("same month of another year should not match")
	}
}

func TestMonthComparable(t *testing.T) {
	// Months are used as map keys by the rollup, so normalization must make
	// equal months identical.
	if NewMonth(2024, time.Month(13)) != NewMonth(2025, time.January) {
		t.Error("month 13 of 2024 should normalize to 2025-01")
	}
	if MonthOfDate(MustParseDate("2024-05-31")) != NewMonth(2024, time.May) {
		t.Error("MonthOfDate should bucket into the calendar month")
	}
}
