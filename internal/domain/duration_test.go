package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		expected string
	}{
		{"zero", 0, "not available"},
		{"negative", -10, "not available"},
		{"under an hour", 45, "45 min"},
		{"single minute", 1, "1 min"},
		{"exactly one hour", 60, "1h"},
		{"exact hours", 120, "2h"},
		{"hours and minutes", 90, "1h 30min"},
		{"long appointment", 165, "2h 45min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.minutes))
		})
	}
}
