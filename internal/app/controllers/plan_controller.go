package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/gradpath/internal/app/models"
	"github.com/ecetin/gradpath/internal/app/models/dto"
	"github.com/ecetin/gradpath/internal/app/services"
	"github.com/ecetin/gradpath/internal/middleware"
)

// PlanController handles student plan endpoints
type PlanController struct {
	planService *services.PlanService
}

// NewPlanController creates a new PlanController
func NewPlanController(planService *services.PlanService) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// CreatePlan creates a student plan toward one program version
// @Summary Create a plan
// @Tags plans
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Plan information"
// @Success 201 {object} dto.APIResponse{data=models.Plan}
// @Failure 400 {object} dto.ErrorResponse "Invalid plan data"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /plans [post]
func (c *PlanController) CreatePlan(ctx *gin.Context) {
	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid plan data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	plan := &models.Plan{
		StudentName: req.StudentName,
		ProgramID:   req.ProgramID,
		Semester:    req.Semester,
		Year:        req.Year,
	}

	if err := c.planService.CreatePlan(ctx, plan); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      plan,
		Timestamp: time.Now(),
	})
}

// GetPlanByID retrieves a plan with its courses
// @Summary Get a plan
// @Tags plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=models.Plan}
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{id} [get]
func (c *PlanController) GetPlanByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	plan, err := c.planService.GetPlanByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      plan,
		Timestamp: time.Now(),
	})
}

// DeletePlan removes a plan and its courses
// @Summary Delete a plan
// @Tags plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{id} [delete]
func (c *PlanController) DeletePlan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.planService.DeletePlan(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddCourse attaches a course to a plan
// @Summary Add a course to a plan
// @Tags plans
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param request body dto.PlanCourseRequest true "Plan course information"
// @Success 201 {object} dto.APIResponse{data=models.PlanCourse}
// @Failure 400 {object} dto.ErrorResponse "Invalid plan course data"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{id}/courses [post]
func (c *PlanController) AddCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.PlanCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid plan course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	planCourse := req.ToPlanCourse()
	if err := c.planService.AddCourse(ctx, id, planCourse); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      planCourse,
		Timestamp: time.Now(),
	})
}

// UpdateCourse updates a plan course
// @Summary Update a plan course
// @Tags plans
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param courseId path int true "Plan course ID"
// @Param request body dto.PlanCourseRequest true "Plan course information"
// @Success 200 {object} dto.APIResponse{data=models.PlanCourse}
// @Failure 404 {object} dto.ErrorResponse "Plan course not found"
// @Router /plans/{id}/courses/{courseId} [put]
func (c *PlanController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.PlanCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid plan course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	planCourse := req.ToPlanCourse()
	if err := c.planService.UpdateCourse(ctx, id, courseID, planCourse); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      planCourse,
		Timestamp: time.Now(),
	})
}

// RemoveCourse detaches a course from a plan
// @Summary Remove a course from a plan
// @Tags plans
// @Produce json
// @Param id path int true "Plan ID"
// @Param courseId path int true "Plan course ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Plan course not found"
// @Router /plans/{id}/courses/{courseId} [delete]
func (c *PlanController) RemoveCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.planService.RemoveCourse(ctx, id, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
