package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLongform(t *testing.T) {
	tests := []struct {
		name         string
		durationText string
		expected     bool
	}{
		{
			name:         "exactly 180 seconds is longform",
			durationText: "PT3M0S",
			expected:     true,
		},
		{
			name:         "one second under the threshold is shortform",
			durationText: "PT2M59S",
			expected:     false,
		},
		{
			name:         "hour-long video is longform",
			durationText: "PT1H2M10S",
			expected:     true,
		},
		{
			name:         "typical short is shortform",
			durationText: "PT45S",
			expected:     false,
		},
		{
			name:         "malformed duration is treated as shortform",
			durationText: "not-a-duration",
			expected:     false,
		},
		{
			name:         "empty duration is treated as shortform",
			durationText: "",
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLongform(tt.durationText))
		})
	}
}
