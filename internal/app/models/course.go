package models

import (
	"strings"
	"unicode"
)

// CourseKey identifies a course in the catalog. The same code can exist at
// multiple institutions with different credit values and tags.
type CourseKey struct {
	Code        string `json:"code"`
	Institution string `json:"institution"`
}

// Course represents immutable catalog reference data for one course.
type Course struct {
	ID            int64    `json:"id" db:"id"`
	Code          string   `json:"code" db:"code"`
	Institution   string   `json:"institution" db:"institution"`
	Title         string   `json:"title" db:"title"`
	Credits       float64  `json:"credits" db:"credits"`
	Level         int      `json:"level" db:"level"`
	Tags          []string `json:"tags" db:"tags"`
	Prerequisites string   `json:"prerequisites,omitempty" db:"prerequisites"`
}

// Key returns the catalog identity of the course
func (c *Course) Key() CourseKey {
	return CourseKey{Code: c.Code, Institution: c.Institution}
}

// HasTag reports whether the course carries the given tag
func (c *Course) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Subject returns the subject prefix of the course code, e.g. "BIOS" for
// "BIOS 101" or "BIOS101". Empty if the code has no leading letters.
func (c *Course) Subject() string {
	return SubjectOf(c.Code)
}

// SubjectOf extracts the leading alphabetic subject prefix from a course code.
func SubjectOf(code string) string {
	code = strings.TrimSpace(code)
	for i, r := range code {
		if !unicode.IsLetter(r) {
			return code[:i]
		}
	}
	return code
}
