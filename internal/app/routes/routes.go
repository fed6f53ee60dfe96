package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecetin/gradpath/internal/app/controllers"
	"github.com/ecetin/gradpath/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	programController *controllers.ProgramController,
	requirementController *controllers.RequirementController,
	planController *controllers.PlanController,
	progressController *controllers.ProgressController,
	equivalencyController *controllers.EquivalencyController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course catalog routes
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.SearchCourses)
		courses.POST("", catalogController.CreateCourse)
		courses.GET("/:institution/:code", catalogController.GetCourse)
	}

	// Program routes; requirements hang off their program
	programs := v1.Group("/programs")
	{
		programs.GET("", programController.GetAllPrograms)
		programs.POST("", programController.CreateProgram)
		programs.GET("/:id", programController.GetProgramByID)
		programs.DELETE("/:id", programController.DeleteProgram)

		programs.GET("/:id/requirements", requirementController.GetRequirements)
		programs.POST("/:id/requirements", requirementController.CreateRequirement)
	}

	// Requirement model routes: the requirement tree plus its groups, course
	// options and constraints
	requirements := v1.Group("/requirements")
	{
		requirements.GET("/:id", requirementController.GetRequirement)
		requirements.DELETE("/:id", requirementController.DeleteRequirement)

		requirements.POST("/:id/groups", requirementController.AddGroup)
		requirements.DELETE("/:id/groups/:name", requirementController.RemoveGroup)
		requirements.POST("/:id/groups/:name/options", requirementController.AddOption)
		requirements.DELETE("/:id/groups/:name/options/:optionId", requirementController.RemoveOption)

		requirements.POST("/:id/constraints", requirementController.AddConstraint)
	}

	v1.DELETE("/constraints/:constraintId", requirementController.RemoveConstraint)

	// Plan routes, including the audit evaluation endpoint
	plans := v1.Group("/plans")
	{
		plans.POST("", planController.CreatePlan)
		plans.GET("/:id", planController.GetPlanByID)
		plans.DELETE("/:id", planController.DeletePlan)

		plans.POST("/:id/courses", planController.AddCourse)
		plans.PUT("/:id/courses/:courseId", planController.UpdateCourse)
		plans.DELETE("/:id/courses/:courseId", planController.RemoveCourse)

		plans.GET("/:id/progress", progressController.EvaluatePlan)
	}

	// Equivalency routes
	equivalencies := v1.Group("/equivalencies")
	{
		equivalencies.GET("", equivalencyController.GetEquivalencies)
		equivalencies.POST("", equivalencyController.CreateEquivalency)
		equivalencies.DELETE("/:id", equivalencyController.DeleteEquivalency)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
