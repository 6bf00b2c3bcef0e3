package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal token",
			input:    "confirm_order",
			expected: "confirm_order",
		},
		{
			name:     "token with whitespace",
			input:    "  confirm_order  ",
			expected: "confirm_order",
		},
		{
			name:     "token with newline",
			input:    "confirm\norder",
			expected: "confirmorder",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "unprintable characters",
			input:    "confirm\x00order\x01",
			expected: "confirmorder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}
