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

// CatalogController handles course catalog endpoints
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// CreateCourse handles catalog course creation
// @Summary Add a catalog course
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Invalid course data"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Router /courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course := &models.Course{
		Code:          req.Code,
		Institution:   req.Institution,
		Title:         req.Title,
		Credits:       req.Credits,
		Level:         req.Level,
		Tags:          req.Tags,
		Prerequisites: req.Prerequisites,
	}

	if err := c.catalogService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetCourse retrieves one course by code and institution
// @Summary Get a catalog course
// @Tags catalog
// @Produce json
// @Param institution path string true "Institution"
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{institution}/{code} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	course, err := c.catalogService.GetCourse(ctx, ctx.Param("code"), ctx.Param("institution"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// SearchCourses lists catalog courses filtered by institution and subject
// @Summary Search catalog courses
// @Tags catalog
// @Produce json
// @Param institution query string false "Institution filter"
// @Param subject query string false "Subject prefix filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses [get]
func (c *CatalogController) SearchCourses(ctx *gin.Context) {
	courses, err := c.catalogService.SearchCourses(ctx, ctx.Query("institution"), ctx.Query("subject"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}
