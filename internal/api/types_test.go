package api

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestColor_Valid(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		valid bool
	}{
		{name: "yellow", color: ColorYellow, valid: true},
		{name: "green", color: ColorGreen, valid: true},
		{name: "red", color: ColorRed, valid: true},
		{name: "purple", color: ColorPurple, valid: true},
		{name: "gray", color: ColorGray, valid: true},
		{name: "random", color: ColorRandom, valid: true},
		{name: "empty", color: "", valid: false},
		{name: "unknown color", color: "orange", valid: false},
		{name: "grey spelling is not a wire value", color: "grey", valid: false},
		{name: "uppercase", color: "YELLOW", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.color.Valid())
		})
	}
}

func TestMessageFormat_Valid(t *testing.T) {
	tests := []struct {
		name   string
		format MessageFormat
		valid  bool
	}{
		{name: "text", format: FormatText, valid: true},
		{name: "html", format: FormatHTML, valid: true},
		{name: "empty", format: "", valid: false},
		{name: "unknown format", format: "markdown", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestTruncateChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{
			name:     "shorter than limit",
			input:    "hello",
			max:      10,
			expected: "hello",
		},
		{
			name:     "exactly at limit",
			input:    "hello",
			max:      5,
			expected: "hello",
		},
		{
			name:     "longer than limit",
			input:    "hello world",
			max:      5,
			expected: "hello",
		},
		{
			name:     "empty string",
			input:    "",
			max:      5,
			expected: "",
		},
		{
			name:     "multibyte within limit",
			input:    "héllo",
			max:      5,
			expected: "héllo",
		},
		{
			name:     "multibyte over limit",
			input:    "éééééé",
			max:      4,
			expected: "éééé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateChars(tt.input, tt.max))
		})
	}
}

func TestTruncateChars_CountsRunes(t *testing.T) {
	input := strings.Repeat("日", 120)
	got := truncateChars(input, 100)
	assert.Equal(t, 100, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}
