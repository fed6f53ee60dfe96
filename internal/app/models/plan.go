package models

import "time"

// Plan is a student's planned path through a program version.
type Plan struct {
	ID          int64     `json:"id" db:"id"`
	StudentName string    `json:"studentName" db:"student_name"`
	ProgramID   int64     `json:"programId" db:"program_id"`
	Semester    Term      `json:"semester" db:"semester"`
	Year        int       `json:"year" db:"year"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Program *Program     `json:"program,omitempty"`
	Courses []PlanCourse `json:"courses,omitempty"`
}

// PlanCourse is a student's attachment of a catalog course to their plan.
// Credits overrides the catalog credit value when set (transfer evaluations
// sometimes award fewer credits than the course is worth at its home
// institution).
type PlanCourse struct {
	ID                  int64        `json:"id" db:"id"`
	PlanID              int64        `json:"planId" db:"plan_id"`
	CourseCode          string       `json:"courseCode" db:"course_code"`
	Institution         string       `json:"institution" db:"institution"`
	Status              CourseStatus `json:"status" db:"status"`
	RequirementCategory string       `json:"requirementCategory,omitempty" db:"requirement_category"`
	Credits             *float64     `json:"credits,omitempty" db:"credits"`
	Semester            Term         `json:"semester,omitempty" db:"semester"`
	Year                int          `json:"year,omitempty" db:"year"`
	Grade               string       `json:"grade,omitempty" db:"grade"`
}

// Key returns the catalog identity the plan course points at
func (p *PlanCourse) Key() CourseKey {
	return CourseKey{Code: p.CourseCode, Institution: p.Institution}
}

// CreditsOr returns the override credits when present, else the fallback
// (normally the catalog course's credit value).
func (p *PlanCourse) CreditsOr(fallback float64) float64 {
	if p.Credits != nil {
		return *p.Credits
	}
	return fallback
}
