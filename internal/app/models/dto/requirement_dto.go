package dto

import (
	"fmt"

	"github.com/ecetin/gradpath/internal/app/models"
)

// CreateRequirementRequest is the payload for creating a requirement
type CreateRequirementRequest struct {
	Semester        models.Term            `json:"semester" binding:"required"`
	Year            int                    `json:"year" binding:"required"`
	Category        string                 `json:"category" binding:"required"`
	Type            models.RequirementType `json:"type" binding:"required"`
	CreditsRequired int                    `json:"creditsRequired" binding:"gte=0"`
	Description     string                 `json:"description"`
}

// CreateGroupRequest is the payload for adding a group to a requirement
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateOptionRequest is the payload for adding a course option to a group
type CreateOptionRequest struct {
	CourseCode  string `json:"courseCode" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	IsPreferred bool   `json:"isPreferred"`
}

// CreateConstraintRequest is the payload for attaching a constraint. The
// param fields are a flat union; which ones are read depends on Type.
type CreateConstraintRequest struct {
	Type        models.ConstraintType `json:"type" binding:"required"`
	CreditsMin  *float64              `json:"creditsMin"`
	CreditsMax  *float64              `json:"creditsMax"`
	CoursesMin  *int                  `json:"coursesMin"`
	CoursesMax  *int                  `json:"coursesMax"`
	Level       int                   `json:"level"`
	Courses     int                   `json:"courses"`
	Tag         string                `json:"tag"`
	Credits     float64               `json:"credits"`
	GroupName   string                `json:"groupName"`
	Subjects    []string              `json:"subjects"`
	Priority    int                   `json:"priority"`
	Description string                `json:"description"`
}

// ToConstraint converts the flat request into the typed constraint variant
func (r *CreateConstraintRequest) ToConstraint() (models.Constraint, error) {
	c := models.Constraint{
		Type: r.Type,
		Scope: models.ConstraintScope{
			GroupName:    r.GroupName,
			SubjectCodes: r.Subjects,
		},
		Priority:    r.Priority,
		Description: r.Description,
	}

	switch r.Type {
	case models.ConstraintCredits:
		c.Params = models.CreditRangeParams{Min: r.CreditsMin, Max: r.CreditsMax}
	case models.ConstraintCourses:
		c.Params = models.CourseCountParams{Min: r.CoursesMin, Max: r.CoursesMax}
	case models.ConstraintMinCoursesAtLevel:
		c.Params = models.LevelCountParams{Level: r.Level, Courses: r.Courses}
	case models.ConstraintMinTagCourses:
		c.Params = models.TagCountParams{Tag: r.Tag, Courses: r.Courses}
	case models.ConstraintMaxTagCredits:
		c.Params = models.TagCreditCapParams{Tag: r.Tag, Credits: r.Credits}
	default:
		return c, fmt.Errorf("unknown constraint type %q", r.Type)
	}

	return c, nil
}
