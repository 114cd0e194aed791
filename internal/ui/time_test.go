package ui

import (
	"testing"
	"time"
)

func TestFormatDurationShort(t *testing.T) {
	cases := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{5 * time.Minute, "5m"},
		{3 * time.Hour, "3h"},
		{49 * time.Hour, "2d"},
		{-time.Minute, "0s"},
	}

	for _, tc := range cases {
		if got := FormatDurationShort(tc.duration); got != tc.want {
			t.Errorf("FormatDurationShort(%v) = %q, want %q", tc.duration, got, tc.want)
		}
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := FormatTimeAgo(now.Add(-2*time.Hour), now); got != "2h ago" {
		t.Errorf("expected '2h ago', got %q", got)
	}
	if got := FormatTimeAgo(time.Time{}, now); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
}

func TestFormatUntil(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := FormatUntil(now.Add(72*time.Hour), now); got != "in 3d" {
		t.Errorf("expected 'in 3d', got %q", got)
	}
	if got := FormatUntil(now.Add(-24*time.Hour), now); got != "1d over" {
		t.Errorf("expected '1d over', got %q", got)
	}
	if got := FormatUntil(time.Time{}, now); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	value := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	if got := FormatDate(&value); got != "01.06.2024" {
		t.Errorf("expected '01.06.2024', got %q", got)
	}
	if got := FormatDate(nil); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
	if got := FormatDateTime(value); got != "01.06.2024 15:30" {
		t.Errorf("expected '01.06.2024 15:30', got %q", got)
	}
}
