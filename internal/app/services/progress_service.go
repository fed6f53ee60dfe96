package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecetin/gradpath/internal/app/audit"
	"github.com/ecetin/gradpath/internal/app/models"
	"github.com/ecetin/gradpath/internal/app/repositories"
)

// ProgressService assembles audit snapshots and runs the audit engine. The
// engine itself is pure; all I/O (loading the plan, the requirement model,
// the catalog slice and the equivalency records) happens here, before the
// evaluation starts.
type ProgressService struct {
	planRepo        *repositories.PlanRepository
	programRepo     *repositories.ProgramRepository
	requirementRepo *repositories.RequirementRepository
	courseRepo      *repositories.CourseRepository
	equivalencyRepo *repositories.EquivalencyRepository
	logger          zerolog.Logger
}

// NewProgressService creates a new progress service instance
func NewProgressService(
	planRepo *repositories.PlanRepository,
	programRepo *repositories.ProgramRepository,
	requirementRepo *repositories.RequirementRepository,
	courseRepo *repositories.CourseRepository,
	equivalencyRepo *repositories.EquivalencyRepository,
	logger zerolog.Logger,
) *ProgressService {
	return &ProgressService{
		planRepo:        planRepo,
		programRepo:     programRepo,
		requirementRepo: requirementRepo,
		courseRepo:      courseRepo,
		equivalencyRepo: equivalencyRepo,
		logger:          logger,
	}
}

// EvaluatePlan runs a full audit of one plan: per-requirement satisfaction,
// aggregate progress and transfer attribution. currentInstitution optionally
// overrides the inferred home institution.
func (s *ProgressService) EvaluatePlan(ctx context.Context, planID int64, mode audit.Mode, currentInstitution string) (*audit.Report, error) {
	snap, err := s.buildSnapshot(ctx, planID)
	if err != nil {
		return nil, err
	}

	report := audit.Evaluate(snap, mode, currentInstitution)

	// Surface data-integrity warnings the pure engine collected; dangling
	// references degrade matching, they never abort it.
	for _, result := range report.Requirements {
		for _, warning := range result.Warnings {
			s.logger.Warn().
				Int64("planId", planID).
				Int64("requirementId", result.RequirementID).
				Str("category", result.Category).
				Msg(warning)
		}
	}

	return report, nil
}

// buildSnapshot loads everything one evaluation needs into memory
func (s *ProgressService) buildSnapshot(ctx context.Context, planID int64) (*audit.Snapshot, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("error loading plan: %w", err)
	}

	program, err := s.programRepo.GetByID(ctx, plan.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("error loading program: %w", err)
	}

	requirements, err := s.requirementRepo.GetByProgramVersion(ctx, plan.ProgramID, plan.Semester, plan.Year)
	if err != nil {
		return nil, fmt.Errorf("error loading requirements: %w", err)
	}

	planCourses, err := s.planRepo.GetCourses(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("error loading plan courses: %w", err)
	}

	// One batched catalog fetch covering every option pool and every plan
	// course; identities the catalog cannot resolve stay absent and are
	// reported as warnings by the engine.
	seen := make(map[models.CourseKey]bool)
	var keys []models.CourseKey
	for _, req := range requirements {
		for _, key := range req.OptionKeys() {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	for _, pc := range planCourses {
		if key := pc.Key(); !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	courses, err := s.courseRepo.GetByKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog courses: %w", err)
	}

	var equivalencies []*models.Equivalency
	if program.TargetInstitution != "" {
		equivalencies, err = s.equivalencyRepo.GetByToInstitution(ctx, program.TargetInstitution)
		if err != nil {
			return nil, fmt.Errorf("error loading equivalencies: %w", err)
		}
	}

	return &audit.Snapshot{
		Courses:           courses,
		Requirements:      requirements,
		PlanCourses:       planCourses,
		TargetInstitution: program.TargetInstitution,
		Equivalencies:     equivalencies,
	}, nil
}
