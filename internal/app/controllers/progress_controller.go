package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/gradpath/internal/app/audit"
	"github.com/ecetin/gradpath/internal/app/models/dto"
	"github.com/ecetin/gradpath/internal/app/services"
	"github.com/ecetin/gradpath/internal/middleware"
)

// ProgressController handles audit evaluation endpoints
type ProgressController struct {
	progressService *services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService *services.ProgressService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// EvaluatePlan runs a full degree audit of one plan
// @Summary Evaluate plan progress
// @Description Runs the audit engine over a plan: per-requirement satisfaction,
// @Description aggregate progress, transfer attribution and unmatched courses.
// @Tags progress
// @Produce json
// @Param id path int true "Plan ID"
// @Param mode query string false "completed (default) or projected"
// @Param currentInstitution query string false "Override for the inferred home institution"
// @Success 200 {object} dto.APIResponse{data=audit.Report}
// @Failure 400 {object} dto.ErrorResponse "Unknown mode"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{id}/progress [get]
func (c *ProgressController) EvaluatePlan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	mode := audit.ModeCompleted
	switch ctx.Query("mode") {
	case "", string(audit.ModeCompleted):
	case string(audit.ModeProjected):
		mode = audit.ModeProjected
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Mode must be completed or projected")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.progressService.EvaluatePlan(ctx, id, mode, ctx.Query("currentInstitution"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}
