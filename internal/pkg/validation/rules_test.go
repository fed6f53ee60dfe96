package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCourseCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"BIOS 101", true},
		{"MATH2410", true},
		{"CS 101", true},
		{"PHYS 1010L", true},
		{"  CS 101  ", true},
		{"cs 101", false},
		{"C 101", false},
		{"CS101X9", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidCourseCode(tt.code), "code %q", tt.code)
	}
}

func TestIsValidTag(t *testing.T) {
	assert.True(t, IsValidTag("has_lab"))
	assert.True(t, IsValidTag("research"))
	assert.True(t, IsValidTag("level2"))
	assert.False(t, IsValidTag("Has_Lab"))
	assert.False(t, IsValidTag("_lab"))
	assert.False(t, IsValidTag(""))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("State University"))
	assert.False(t, IsValidName(" x "))
	assert.False(t, IsValidName(strings.Repeat("a", 121)))
}
