package models

// Term represents a semester term
type Term string

// Term constants
const (
	TermFall   Term = "FALL"
	TermSpring Term = "SPRING"
	TermSummer Term = "SUMMER"
)

// RequirementType distinguishes the two requirement shapes
type RequirementType string

const (
	// RequirementSimple carries a single implicit group of eligible courses
	RequirementSimple RequirementType = "SIMPLE"
	// RequirementGrouped carries an ordered list of independently mandatory groups
	RequirementGrouped RequirementType = "GROUPED"
)

// CourseStatus is the lifecycle state of a course on a student's plan
type CourseStatus string

const (
	StatusPlanned    CourseStatus = "planned"
	StatusInProgress CourseStatus = "in_progress"
	StatusCompleted  CourseStatus = "completed"
)

// IsValid reports whether the status is one of the known states
func (s CourseStatus) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ConstraintType identifies a constraint kind
type ConstraintType string

const (
	ConstraintCredits           ConstraintType = "credits"
	ConstraintCourses           ConstraintType = "courses"
	ConstraintMinCoursesAtLevel ConstraintType = "min_courses_at_level"
	ConstraintMinTagCourses     ConstraintType = "min_tag_courses"
	ConstraintMaxTagCredits     ConstraintType = "max_tag_credits"
)

// IsValid reports whether the constraint type is known
func (t ConstraintType) IsValid() bool {
	switch t {
	case ConstraintCredits, ConstraintCourses, ConstraintMinCoursesAtLevel,
		ConstraintMinTagCourses, ConstraintMaxTagCredits:
		return true
	}
	return false
}
