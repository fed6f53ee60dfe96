package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecetin/gradpath/internal/app/models"
	"github.com/ecetin/gradpath/internal/app/repositories"
)

// Common requirement errors
var (
	ErrRequirementNotFound   = errors.New("requirement not found")
	ErrRequirementValidation = errors.New("requirement validation failed")
	ErrGroupNotFound         = errors.New("requirement group not found")
	ErrGroupAlreadyExists    = errors.New("group with this name already exists")
	ErrOptionNotFound        = errors.New("course option not found")
	ErrConstraintNotFound    = errors.New("constraint not found")
)

// RequirementService maintains the requirement model of a program version.
// Every edit goes through the in-memory model methods first so the model
// invariants (group name uniqueness, SIMPLE normalization, no dangling scope
// references) are enforced before anything is persisted.
type RequirementService struct {
	requirementRepo *repositories.RequirementRepository
	programRepo     *repositories.ProgramRepository
}

// NewRequirementService creates a new requirement service instance
func NewRequirementService(requirementRepo *repositories.RequirementRepository, programRepo *repositories.ProgramRepository) *RequirementService {
	return &RequirementService{
		requirementRepo: requirementRepo,
		programRepo:     programRepo,
	}
}

// CreateRequirement creates a requirement for a program version. SIMPLE
// requirements are normalized to carry their single "Eligible" group.
func (s *RequirementService) CreateRequirement(ctx context.Context, programID int64, semester models.Term, year int, category string, reqType models.RequirementType, creditsRequired int, description string) (*models.Requirement, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrRequirementValidation)
	}
	if reqType != models.RequirementSimple && reqType != models.RequirementGrouped {
		return nil, fmt.Errorf("%w: unknown requirement type %q", ErrRequirementValidation, reqType)
	}

	if _, err := s.programRepo.GetByID(ctx, programID); err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("error checking program: %w", err)
	}

	req, err := models.NewRequirement(programID, semester, year, category, reqType, creditsRequired)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequirementValidation, err)
	}
	req.Description = description

	if err := s.requirementRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("error creating requirement: %w", err)
	}
	return req, nil
}

// GetRequirement loads one requirement with its full tree
func (s *RequirementService) GetRequirement(ctx context.Context, id int64) (*models.Requirement, error) {
	req, err := s.requirementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRequirementNotFound) {
			return nil, ErrRequirementNotFound
		}
		return nil, fmt.Errorf("error retrieving requirement: %w", err)
	}
	return req, nil
}

// GetRequirements loads every requirement of one program catalog version
func (s *RequirementService) GetRequirements(ctx context.Context, programID int64, semester models.Term, year int) ([]*models.Requirement, error) {
	reqs, err := s.requirementRepo.GetByProgramVersion(ctx, programID, semester, year)
	if err != nil {
		return nil, fmt.Errorf("error retrieving requirements: %w", err)
	}
	return reqs, nil
}

// DeleteRequirement removes a requirement and its tree
func (s *RequirementService) DeleteRequirement(ctx context.Context, id int64) error {
	if err := s.requirementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRequirementNotFound) {
			return ErrRequirementNotFound
		}
		return fmt.Errorf("error deleting requirement: %w", err)
	}
	return nil
}

// AddGroup adds a named group to a GROUPED requirement
func (s *RequirementService) AddGroup(ctx context.Context, requirementID int64, name string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrRequirementValidation)
	}

	req, err := s.GetRequirement(ctx, requirementID)
	if err != nil {
		return nil, err
	}

	group, err := req.AddGroup(name)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateGroupName):
			return nil, ErrGroupAlreadyExists
		case errors.Is(err, models.ErrSimpleGroupImmutable):
			return nil, fmt.Errorf("%w: %v", ErrRequirementValidation, err)
		}
		return nil, err
	}

	if err := s.requirementRepo.CreateGroup(ctx, group); err != nil {
		if errors.Is(err, repositories.ErrGroupAlreadyExists) {
			return nil, ErrGroupAlreadyExists
		}
		return nil, fmt.Errorf("error creating group: %w", err)
	}
	return group, nil
}

// RemoveGroup removes a group; constraints scoped to it become unscoped
func (s *RequirementService) RemoveGroup(ctx context.Context, requirementID int64, name string) error {
	req, err := s.GetRequirement(ctx, requirementID)
	if err != nil {
		return err
	}

	if err := req.RemoveGroup(name); err != nil {
		switch {
		case errors.Is(err, models.ErrGroupNotInRequirement):
			return ErrGroupNotFound
		case errors.Is(err, models.ErrSimpleGroupImmutable):
			return fmt.Errorf("%w: %v", ErrRequirementValidation, err)
		}
		return err
	}

	if err := s.requirementRepo.DeleteGroup(ctx, requirementID, name); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("error deleting group: %w", err)
	}
	return nil
}

// AddOption adds a course option to a group's pool. The referenced course
// does not have to exist in the catalog yet; unresolved options are excluded
// from matching at evaluation time.
func (s *RequirementService) AddOption(ctx context.Context, requirementID int64, groupName string, option models.CourseOption) (*models.CourseOption, error) {
	req, err := s.GetRequirement(ctx, requirementID)
	if err != nil {
		return nil, err
	}

	group := req.GroupByName(groupName)
	if group == nil {
		return nil, ErrGroupNotFound
	}
	option.GroupID = group.ID
	option.CourseCode = strings.TrimSpace(option.CourseCode)
	option.Institution = strings.TrimSpace(option.Institution)
	if option.CourseCode == "" || option.Institution == "" {
		return nil, fmt.Errorf("%w: option needs a course code and institution", ErrRequirementValidation)
	}

	if err := s.requirementRepo.CreateOption(ctx, &option); err != nil {
		return nil, fmt.Errorf("error creating option: %w", err)
	}
	return &option, nil
}

// RemoveOption removes a course option from a group
func (s *RequirementService) RemoveOption(ctx context.Context, requirementID int64, groupName string, optionID int64) error {
	req, err := s.GetRequirement(ctx, requirementID)
	if err != nil {
		return err
	}
	if err := req.RemoveOption(groupName, optionID); err != nil {
		switch {
		case errors.Is(err, models.ErrGroupNotInRequirement):
			return ErrGroupNotFound
		case errors.Is(err, models.ErrOptionNotInGroup):
			return ErrOptionNotFound
		}
		return err
	}

	if err := s.requirementRepo.DeleteOption(ctx, optionID); err != nil {
		if errors.Is(err, repositories.ErrOptionNotFound) {
			return ErrOptionNotFound
		}
		return fmt.Errorf("error deleting option: %w", err)
	}
	return nil
}

// AddConstraint validates and attaches a constraint to a requirement
func (s *RequirementService) AddConstraint(ctx context.Context, requirementID int64, constraint models.Constraint) (*models.Constraint, error) {
	req, err := s.GetRequirement(ctx, requirementID)
	if err != nil {
		return nil, err
	}

	if err := req.AddConstraint(constraint); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequirementValidation, err)
	}
	attached := &req.Constraints[len(req.Constraints)-1]

	if err := s.requirementRepo.CreateConstraint(ctx, attached); err != nil {
		return nil, fmt.Errorf("error creating constraint: %w", err)
	}
	return attached, nil
}

// RemoveConstraint detaches a constraint from its requirement
func (s *RequirementService) RemoveConstraint(ctx context.Context, constraintID int64) error {
	if err := s.requirementRepo.DeleteConstraint(ctx, constraintID); err != nil {
		if errors.Is(err, repositories.ErrConstraintNotFound) {
			return ErrConstraintNotFound
		}
		return fmt.Errorf("error deleting constraint: %w", err)
	}
	return nil
}
