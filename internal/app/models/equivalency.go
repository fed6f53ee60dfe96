package models

// Equivalency records that a course at one institution is accepted as
// equivalent to a course at another institution.
type Equivalency struct {
	ID              int64  `json:"id" db:"id"`
	FromCourseCode  string `json:"fromCourseCode" db:"from_course_code"`
	FromInstitution string `json:"fromInstitution" db:"from_institution"`
	ToCourseCode    string `json:"toCourseCode,omitempty" db:"to_course_code"`
	ToInstitution   string `json:"toInstitution" db:"to_institution"`
}

// FromKey returns the catalog identity of the source course
func (e *Equivalency) FromKey() CourseKey {
	return CourseKey{Code: e.FromCourseCode, Institution: e.FromInstitution}
}
