package options

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.Local)
	tests := []struct {
		name   string
		raw    string
		future bool
		want   time.Time
	}{
		{"full date", "2023-12-5", false, time.Date(2023, time.December, 5, 0, 0, 0, 0, time.Local)},
		{"short past", "3/1", false, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)},
		{"short rolls back", "12/5", false, time.Date(2023, time.December, 5, 0, 0, 0, 0, time.Local)},
		{"target ahead", "6/1", true, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)},
		{"target rolls on", "1/3", true, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDay(tt.raw, now, tt.future)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDayEmptyAndInvalid(t *testing.T) {
	now := time.Now()
	if got, err := parseDay("", now, false); got != nil || err != nil {
		t.Fatalf("empty = %v, %v", got, err)
	}
	if _, err := parseDay("yesterday", now, false); err == nil {
		t.Fatal("expected error")
	}
}

func TestOutputValidate(t *testing.T) {
	for _, ok := range []string{"text", "JSON", ""} {
		if err := (&OutputOptions{Output: ok}).Validate(); err != nil {
			t.Errorf("%q: %v", ok, err)
		}
	}
	if err := (&OutputOptions{Output: "yaml"}).Validate(); err == nil {
		t.Error("expected error for yaml")
	}
}
