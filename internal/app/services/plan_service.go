package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecetin/gradpath/internal/app/models"
	"github.com/ecetin/gradpath/internal/app/repositories"
)

// Common plan errors
var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPlanCourseNotFound = errors.New("plan course not found")
	ErrPlanValidation     = errors.New("plan validation failed")
)

// PlanService handles student plan operations
type PlanService struct {
	planRepo    *repositories.PlanRepository
	programRepo *repositories.ProgramRepository
}

// NewPlanService creates a new plan service instance
func NewPlanService(planRepo *repositories.PlanRepository, programRepo *repositories.ProgramRepository) *PlanService {
	return &PlanService{
		planRepo:    planRepo,
		programRepo: programRepo,
	}
}

// CreatePlan creates a plan toward one program version
func (s *PlanService) CreatePlan(ctx context.Context, plan *models.Plan) error {
	plan.StudentName = strings.TrimSpace(plan.StudentName)
	if plan.StudentName == "" {
		return fmt.Errorf("%w: student name is required", ErrPlanValidation)
	}

	if _, err := s.programRepo.GetByID(ctx, plan.ProgramID); err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return ErrProgramNotFound
		}
		return fmt.Errorf("error checking program: %w", err)
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return fmt.Errorf("error creating plan: %w", err)
	}
	return nil
}

// GetPlanByID retrieves a plan with its courses and program
func (s *PlanService) GetPlanByID(ctx context.Context, id int64) (*models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}

	program, err := s.programRepo.GetByID(ctx, plan.ProgramID)
	if err == nil {
		plan.Program = program
	}

	return plan, nil
}

// DeletePlan removes a plan and its courses
func (s *PlanService) DeletePlan(ctx context.Context, id int64) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return ErrPlanNotFound
		}
		return fmt.Errorf("error deleting plan: %w", err)
	}
	return nil
}

// validatePlanCourse checks a plan course's fields before persistence
func validatePlanCourse(pc *models.PlanCourse) error {
	pc.CourseCode = strings.TrimSpace(pc.CourseCode)
	pc.Institution = strings.TrimSpace(pc.Institution)
	if pc.CourseCode == "" || pc.Institution == "" {
		return fmt.Errorf("%w: course code and institution are required", ErrPlanValidation)
	}
	if !pc.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrPlanValidation, pc.Status)
	}
	if pc.Credits != nil && *pc.Credits < 0 {
		return fmt.Errorf("%w: credit override must be non-negative", ErrPlanValidation)
	}
	return nil
}

// AddCourse attaches a course to a plan. The requirement category is free
// text; a category naming no requirement leaves the course unattributed
// rather than rejected.
func (s *PlanService) AddCourse(ctx context.Context, planID int64, pc *models.PlanCourse) error {
	pc.PlanID = planID
	if err := validatePlanCourse(pc); err != nil {
		return err
	}

	if err := s.planRepo.AddCourse(ctx, pc); err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return ErrPlanNotFound
		}
		return fmt.Errorf("error adding plan course: %w", err)
	}
	return nil
}

// UpdateCourse updates a plan course's status, category, credit override,
// term placement or grade.
func (s *PlanService) UpdateCourse(ctx context.Context, planID, planCourseID int64, pc *models.PlanCourse) error {
	pc.ID = planCourseID
	pc.PlanID = planID
	if err := validatePlanCourse(pc); err != nil {
		return err
	}

	if err := s.planRepo.UpdateCourse(ctx, pc); err != nil {
		if errors.Is(err, repositories.ErrPlanCourseNotFound) {
			return ErrPlanCourseNotFound
		}
		return fmt.Errorf("error updating plan course: %w", err)
	}
	return nil
}

// RemoveCourse detaches a course from a plan
func (s *PlanService) RemoveCourse(ctx context.Context, planID, planCourseID int64) error {
	if err := s.planRepo.RemoveCourse(ctx, planID, planCourseID); err != nil {
		if errors.Is(err, repositories.ErrPlanCourseNotFound) {
			return ErrPlanCourseNotFound
		}
		return fmt.Errorf("error removing plan course: %w", err)
	}
	return nil
}
