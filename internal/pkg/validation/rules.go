package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Course code: subject prefix plus number, optional single space
	// (e.g. "BIOS 101", "MATH2410").
	CourseCodePattern = `^[A-Z]{2,6} ?\d{3,4}[A-Z]?$`

	// Institution and program name length bounds
	NameMinLength = 2
	NameMaxLength = 120

	// Tag: lowercase snake_case (e.g. "has_lab", "research")
	TagPattern = `^[a-z][a-z0-9_]*$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
	Tag        *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
	Tag:        regexp.MustCompile(TagPattern),
}

// IsValidCourseCode reports whether a course code matches the expected shape
func IsValidCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(strings.TrimSpace(code))
}

// IsValidTag reports whether a tag matches the expected shape
func IsValidTag(tag string) bool {
	return CompiledPatterns.Tag.MatchString(tag)
}

// IsValidName reports whether an institution/program/category name is within
// length bounds after trimming.
func IsValidName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= NameMinLength && n <= NameMaxLength
}
