package tracking

import "testing"

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"00:05", "12:05 AM"},
		{"13:00", "1:00 PM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"11:59", "11:59 AM"},
		{"23:59", "11:59 PM"},
		{"01:07", "1:07 AM"},
		{"--", "--"},
		{"", "--"},
		{"not a time", "--"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FormatClockTime(tt.input); got != tt.expected {
				t.Errorf("FormatClockTime(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
