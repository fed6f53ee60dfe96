package dto

import "github.com/ecetin/gradpath/internal/app/models"

// CreatePlanRequest is the payload for creating a student plan
type CreatePlanRequest struct {
	StudentName string      `json:"studentName" binding:"required"`
	ProgramID   int64       `json:"programId" binding:"required"`
	Semester    models.Term `json:"semester" binding:"required"`
	Year        int         `json:"year" binding:"required"`
}

// PlanCourseRequest is the payload for adding or updating a plan course
type PlanCourseRequest struct {
	CourseCode          string              `json:"courseCode" binding:"required"`
	Institution         string              `json:"institution" binding:"required"`
	Status              models.CourseStatus `json:"status" binding:"required"`
	RequirementCategory string              `json:"requirementCategory"`
	Credits             *float64            `json:"credits"`
	Semester            models.Term         `json:"semester"`
	Year                int                 `json:"year"`
	Grade               string              `json:"grade"`
}

// ToPlanCourse converts the request into a model
func (r *PlanCourseRequest) ToPlanCourse() *models.PlanCourse {
	return &models.PlanCourse{
		CourseCode:          r.CourseCode,
		Institution:         r.Institution,
		Status:              r.Status,
		RequirementCategory: r.RequirementCategory,
		Credits:             r.Credits,
		Semester:            r.Semester,
		Year:                r.Year,
		Grade:               r.Grade,
	}
}
