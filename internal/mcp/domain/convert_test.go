package domain

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		if got := formatTimestamp(time.Time{}); got != "" {
			t.Errorf("expected empty string for zero time, got %q", got)
		}
	})

	t.Run("renders RFC 3339", func(t *testing.T) {
		ts := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
		if got := formatTimestamp(ts); got != "2025-03-14T09:26:53Z" {
			t.Errorf("expected 2025-03-14T09:26:53Z, got %q", got)
		}
	})
}

func TestNormalizeEnum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "in_progress", want: "in_progress"},
		{name: "uppercase", input: "DONE", want: "done"},
		{name: "mixed case with spaces", input: "  In_Progress ", want: "in_progress"},
		{name: "empty", input: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeEnum(tc.input); got != tc.want {
				t.Errorf("normalizeEnum(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeEnumPtr(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if got := normalizeEnumPtr(nil); got != nil {
			t.Errorf("expected nil, got %q", *got)
		}
	})

	t.Run("normalizes value", func(t *testing.T) {
		value := "URGENT"
		got := normalizeEnumPtr(&value)
		if got == nil || *got != "urgent" {
			t.Errorf("expected urgent, got %v", got)
		}
		if value != "URGENT" {
			t.Errorf("input value mutated to %q", value)
		}
	})
}
