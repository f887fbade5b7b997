package ui

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "hello",
			maxWidth: 10,
			expected: "hello",
		},
		{
			name:     "exact width unchanged",
			input:    "hello",
			maxWidth: 5,
			expected: "hello",
		},
		{
			name:     "long string truncated",
			input:    "hello world",
			maxWidth: 8,
			expected: "hello w…",
		},
		{
			name:     "empty string",
			input:    "",
			maxWidth: 10,
			expected: "",
		},
		{
			name:     "zero width",
			input:    "hello",
			maxWidth: 0,
			expected: "",
		},
		{
			name:     "wide runes fit unchanged",
			input:    "日本",
			maxWidth: 4,
			expected: "日本",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.input, tt.maxWidth)
			if result != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, result, tt.expected)
			}
		})
	}
}
