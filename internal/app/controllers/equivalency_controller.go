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

// EquivalencyController handles course equivalency endpoints
type EquivalencyController struct {
	equivalencyService *services.EquivalencyService
}

// NewEquivalencyController creates a new EquivalencyController
func NewEquivalencyController(equivalencyService *services.EquivalencyService) *EquivalencyController {
	return &EquivalencyController{
		equivalencyService: equivalencyService,
	}
}

// CreateEquivalency records that a course transfers into an institution
// @Summary Record a course equivalency
// @Tags equivalencies
// @Accept json
// @Produce json
// @Param request body dto.CreateEquivalencyRequest true "Equivalency information"
// @Success 201 {object} dto.APIResponse{data=models.Equivalency}
// @Failure 400 {object} dto.ErrorResponse "Invalid equivalency data"
// @Failure 409 {object} dto.ErrorResponse "Equivalency already recorded"
// @Router /equivalencies [post]
func (c *EquivalencyController) CreateEquivalency(ctx *gin.Context) {
	var req dto.CreateEquivalencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid equivalency data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	eq := &models.Equivalency{
		FromCourseCode:  req.FromCourseCode,
		FromInstitution: req.FromInstitution,
		ToCourseCode:    req.ToCourseCode,
		ToInstitution:   req.ToInstitution,
	}

	if err := c.equivalencyService.CreateEquivalency(ctx, eq); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      eq,
		Timestamp: time.Now(),
	})
}

// GetEquivalencies lists equivalencies into an institution
// @Summary List equivalencies toward an institution
// @Tags equivalencies
// @Produce json
// @Param institution query string true "Destination institution"
// @Success 200 {object} dto.APIResponse{data=[]models.Equivalency}
// @Router /equivalencies [get]
func (c *EquivalencyController) GetEquivalencies(ctx *gin.Context) {
	equivalencies, err := c.equivalencyService.GetEquivalenciesTo(ctx, ctx.Query("institution"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      equivalencies,
		Timestamp: time.Now(),
	})
}

// DeleteEquivalency removes an equivalency record
// @Summary Delete an equivalency
// @Tags equivalencies
// @Produce json
// @Param id path int true "Equivalency ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Equivalency not found"
// @Router /equivalencies/{id} [delete]
func (c *EquivalencyController) DeleteEquivalency(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.equivalencyService.DeleteEquivalency(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
