package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/gradpath/internal/app/models/dto"
	"github.com/ecetin/gradpath/internal/app/services"
)

// HandleAPIError maps service-layer errors onto API responses. Controllers
// call this for any error coming back from a service.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrProgramNotFound),
		errors.Is(err, services.ErrRequirementNotFound),
		errors.Is(err, services.ErrGroupNotFound),
		errors.Is(err, services.ErrOptionNotFound),
		errors.Is(err, services.ErrConstraintNotFound),
		errors.Is(err, services.ErrPlanNotFound),
		errors.Is(err, services.ErrPlanCourseNotFound),
		errors.Is(err, services.ErrEquivalencyNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	case errors.Is(err, services.ErrCourseAlreadyExists),
		errors.Is(err, services.ErrProgramAlreadyExists),
		errors.Is(err, services.ErrGroupAlreadyExists),
		errors.Is(err, services.ErrEquivalencyAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())

	case errors.Is(err, services.ErrProgramHasRelations):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceInUse, err.Error())

	case errors.Is(err, services.ErrCourseValidation),
		errors.Is(err, services.ErrProgramValidation),
		errors.Is(err, services.ErrRequirementValidation),
		errors.Is(err, services.ErrPlanValidation),
		errors.Is(err, services.ErrEquivalencyValidation):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}
