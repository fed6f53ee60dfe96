package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/gradpath/internal/app/models"
	"github.com/ecetin/gradpath/internal/app/models/dto"
	"github.com/ecetin/gradpath/internal/app/services"
	"github.com/ecetin/gradpath/internal/middleware"
)

// RequirementController handles requirement model endpoints: requirements,
// their groups, course options and constraints.
type RequirementController struct {
	requirementService *services.RequirementService
}

// NewRequirementController creates a new RequirementController
func NewRequirementController(requirementService *services.RequirementService) *RequirementController {
	return &RequirementController{
		requirementService: requirementService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateRequirement creates a requirement for a program catalog version
// @Summary Create a requirement
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param request body dto.CreateRequirementRequest true "Requirement information"
// @Success 201 {object} dto.APIResponse{data=models.Requirement}
// @Failure 400 {object} dto.ErrorResponse "Invalid requirement data"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /programs/{id}/requirements [post]
func (c *RequirementController) CreateRequirement(ctx *gin.Context) {
	programID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateRequirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid requirement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	requirement, err := c.requirementService.CreateRequirement(ctx, programID, req.Semester, req.Year, req.Category, req.Type, req.CreditsRequired, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      requirement,
		Timestamp: time.Now(),
	})
}

// GetRequirements lists the requirements of one program catalog version
// @Summary List requirements of a program version
// @Tags requirements
// @Produce json
// @Param id path int true "Program ID"
// @Param semester query string true "Catalog semester (FALL, SPRING, SUMMER)"
// @Param year query int true "Catalog year"
// @Success 200 {object} dto.APIResponse{data=[]models.Requirement}
// @Router /programs/{id}/requirements [get]
func (c *RequirementController) GetRequirements(ctx *gin.Context) {
	programID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	requirements, err := c.requirementService.GetRequirements(ctx, programID, models.Term(ctx.Query("semester")), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requirements,
		Timestamp: time.Now(),
	})
}

// GetRequirement loads one requirement with its groups, options and constraints
// @Summary Get a requirement
// @Tags requirements
// @Produce json
// @Param id path int true "Requirement ID"
// @Success 200 {object} dto.APIResponse{data=models.Requirement}
// @Failure 404 {object} dto.ErrorResponse "Requirement not found"
// @Router /requirements/{id} [get]
func (c *RequirementController) GetRequirement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	requirement, err := c.requirementService.GetRequirement(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requirement,
		Timestamp: time.Now(),
	})
}

// DeleteRequirement removes a requirement and its tree
// @Summary Delete a requirement
// @Tags requirements
// @Produce json
// @Param id path int true "Requirement ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Requirement not found"
// @Router /requirements/{id} [delete]
func (c *RequirementController) DeleteRequirement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.requirementService.DeleteRequirement(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddGroup adds a named group to a GROUPED requirement
// @Summary Add a group to a requirement
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path int true "Requirement ID"
// @Param request body dto.CreateGroupRequest true "Group information"
// @Success 201 {object} dto.APIResponse{data=models.Group}
// @Failure 400 {object} dto.ErrorResponse "Invalid group data"
// @Failure 409 {object} dto.ErrorResponse "Group name already used"
// @Router /requirements/{id}/groups [post]
func (c *RequirementController) AddGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid group data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	group, err := c.requirementService.AddGroup(ctx, id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      group,
		Timestamp: time.Now(),
	})
}

// RemoveGroup removes a group from a requirement
// @Summary Remove a group from a requirement
// @Tags requirements
// @Produce json
// @Param id path int true "Requirement ID"
// @Param name path string true "Group name"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /requirements/{id}/groups/{name} [delete]
func (c *RequirementController) RemoveGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.requirementService.RemoveGroup(ctx, id, ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddOption adds a course option to a group's pool
// @Summary Add a course option to a group
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path int true "Requirement ID"
// @Param name path string true "Group name"
// @Param request body dto.CreateOptionRequest true "Option information"
// @Success 201 {object} dto.APIResponse{data=models.CourseOption}
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /requirements/{id}/groups/{name}/options [post]
func (c *RequirementController) AddOption(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid option data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	option, err := c.requirementService.AddOption(ctx, id, ctx.Param("name"), models.CourseOption{
		CourseCode:  req.CourseCode,
		Institution: req.Institution,
		IsPreferred: req.IsPreferred,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      option,
		Timestamp: time.Now(),
	})
}

// RemoveOption removes a course option from a group
// @Summary Remove a course option from a group
// @Tags requirements
// @Produce json
// @Param id path int true "Requirement ID"
// @Param name path string true "Group name"
// @Param optionId path int true "Option ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Option not found"
// @Router /requirements/{id}/groups/{name}/options/{optionId} [delete]
func (c *RequirementController) RemoveOption(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	optionID, ok := parseIDParam(ctx, "optionId")
	if !ok {
		return
	}

	if err := c.requirementService.RemoveOption(ctx, id, ctx.Param("name"), optionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddConstraint attaches a constraint to a requirement
// @Summary Add a constraint to a requirement
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path int true "Requirement ID"
// @Param request body dto.CreateConstraintRequest true "Constraint information"
// @Success 201 {object} dto.APIResponse{data=models.Constraint}
// @Failure 400 {object} dto.ErrorResponse "Invalid constraint data"
// @Router /requirements/{id}/constraints [post]
func (c *RequirementController) AddConstraint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateConstraintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid constraint data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	constraint, err := req.ToConstraint()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	attached, err := c.requirementService.AddConstraint(ctx, id, constraint)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      attached,
		Timestamp: time.Now(),
	})
}

// RemoveConstraint detaches a constraint
// @Summary Remove a constraint
// @Tags requirements
// @Produce json
// @Param constraintId path int true "Constraint ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Constraint not found"
// @Router /constraints/{constraintId} [delete]
func (c *RequirementController) RemoveConstraint(ctx *gin.Context) {
	constraintID, ok := parseIDParam(ctx, "constraintId")
	if !ok {
		return
	}

	if err := c.requirementService.RemoveConstraint(ctx, constraintID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
