package models

import (
	"errors"
	"fmt"
)

// Constraint validation errors
var (
	ErrUnknownConstraintType = errors.New("unknown constraint type")
	ErrNegativeBound         = errors.New("constraint bounds must be non-negative")
	ErrMissingParams         = errors.New("constraint params missing for its type")
)

// ConstraintParams is the typed parameter payload of a constraint. Exactly one
// concrete params type corresponds to each ConstraintType; the evaluator
// switches exhaustively over the concrete type.
type ConstraintParams interface {
	constraintParams()
	// Validate checks the numeric invariants (counts and credits >= 0).
	// Inverted bounds (min > max) are legal here; they make the constraint
	// unsatisfiable at evaluation time rather than invalid at build time.
	Validate() error
}

// CreditRangeParams bounds the credit sum of matched courses.
// A nil bound means that side is unbounded.
type CreditRangeParams struct {
	Min *float64 `json:"creditsMin,omitempty"`
	Max *float64 `json:"creditsMax,omitempty"`
}

// CourseCountParams bounds the number of matched courses.
type CourseCountParams struct {
	Min *int `json:"coursesMin,omitempty"`
	Max *int `json:"coursesMax,omitempty"`
}

// LevelCountParams requires a minimum number of matched courses at or above
// a course level (e.g. at least 4 courses at the 3000 level).
type LevelCountParams struct {
	Level   int `json:"level"`
	Courses int `json:"courses"`
}

// TagCountParams requires a minimum number of matched courses carrying a tag.
type TagCountParams struct {
	Tag     string `json:"tag"`
	Courses int    `json:"courses"`
}

// TagCreditCapParams caps the credit sum of matched courses carrying a tag.
type TagCreditCapParams struct {
	Tag     string  `json:"tag"`
	Credits float64 `json:"credits"`
}

func (CreditRangeParams) constraintParams()  {}
func (CourseCountParams) constraintParams()  {}
func (LevelCountParams) constraintParams()   {}
func (TagCountParams) constraintParams()     {}
func (TagCreditCapParams) constraintParams() {}

// Validate implements ConstraintParams
func (p CreditRangeParams) Validate() error {
	if p.Min != nil && *p.Min < 0 {
		return fmt.Errorf("%w: credits_min %v", ErrNegativeBound, *p.Min)
	}
	if p.Max != nil && *p.Max < 0 {
		return fmt.Errorf("%w: credits_max %v", ErrNegativeBound, *p.Max)
	}
	return nil
}

// Validate implements ConstraintParams
func (p CourseCountParams) Validate() error {
	if p.Min != nil && *p.Min < 0 {
		return fmt.Errorf("%w: courses_min %d", ErrNegativeBound, *p.Min)
	}
	if p.Max != nil && *p.Max < 0 {
		return fmt.Errorf("%w: courses_max %d", ErrNegativeBound, *p.Max)
	}
	return nil
}

// Validate implements ConstraintParams
func (p LevelCountParams) Validate() error {
	if p.Level < 0 || p.Courses < 0 {
		return fmt.Errorf("%w: level %d, courses %d", ErrNegativeBound, p.Level, p.Courses)
	}
	return nil
}

// Validate implements ConstraintParams
func (p TagCountParams) Validate() error {
	if p.Courses < 0 {
		return fmt.Errorf("%w: courses %d", ErrNegativeBound, p.Courses)
	}
	return nil
}

// Validate implements ConstraintParams
func (p TagCreditCapParams) Validate() error {
	if p.Credits < 0 {
		return fmt.Errorf("%w: credits %v", ErrNegativeBound, p.Credits)
	}
	return nil
}

// ConstraintScope restricts which matched courses a constraint sees.
// GroupName limits evaluation to courses resolved from that group's option
// pool; SubjectCodes further limits to courses whose subject prefix matches.
type ConstraintScope struct {
	GroupName    string   `json:"groupName,omitempty"`
	SubjectCodes []string `json:"subjectCodes,omitempty"`
}

// IsScoped reports whether the scope restricts anything
func (s ConstraintScope) IsScoped() bool {
	return s.GroupName != "" || len(s.SubjectCodes) > 0
}

// Constraint is a fine-grained rule attached to a requirement. Priority
// orders evaluation output (lower first); it has no effect on satisfaction.
type Constraint struct {
	ID            int64            `json:"id" db:"id"`
	RequirementID int64            `json:"requirementId" db:"requirement_id"`
	Type          ConstraintType   `json:"type" db:"constraint_type"`
	Params        ConstraintParams `json:"params"`
	Scope         ConstraintScope  `json:"scope"`
	Priority      int              `json:"priority" db:"priority"`
	Description   string           `json:"description,omitempty" db:"description"`
}

// Validate checks that the constraint's params payload matches its type and
// that numeric bounds are non-negative.
func (c *Constraint) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownConstraintType, c.Type)
	}
	if c.Params == nil {
		return fmt.Errorf("%w: %s", ErrMissingParams, c.Type)
	}
	var ok bool
	switch c.Type {
	case ConstraintCredits:
		_, ok = c.Params.(CreditRangeParams)
	case ConstraintCourses:
		_, ok = c.Params.(CourseCountParams)
	case ConstraintMinCoursesAtLevel:
		_, ok = c.Params.(LevelCountParams)
	case ConstraintMinTagCourses:
		_, ok = c.Params.(TagCountParams)
	case ConstraintMaxTagCredits:
		_, ok = c.Params.(TagCreditCapParams)
	}
	if !ok {
		return fmt.Errorf("%w: params %T do not match type %s", ErrMissingParams, c.Params, c.Type)
	}
	return c.Params.Validate()
}
