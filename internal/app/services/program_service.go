package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecetin/gradpath/internal/app/models"
	"github.com/ecetin/gradpath/internal/app/repositories"
	"github.com/ecetin/gradpath/internal/pkg/validation"
)

// Common program errors
var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrProgramAlreadyExists = errors.New("program with this name already exists")
	ErrProgramHasRelations  = errors.New("program has associated data and cannot be deleted")
	ErrProgramValidation    = errors.New("program validation failed")
)

// ProgramService handles degree program operations
type ProgramService struct {
	programRepo *repositories.ProgramRepository
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo *repositories.ProgramRepository) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
	}
}

// CreateProgram creates a new degree program
func (s *ProgramService) CreateProgram(ctx context.Context, program *models.Program) error {
	program.Name = strings.TrimSpace(program.Name)
	program.TargetInstitution = strings.TrimSpace(program.TargetInstitution)

	if !validation.IsValidName(program.Name) {
		return fmt.Errorf("%w: name is required", ErrProgramValidation)
	}
	// Target institution may legitimately be empty while a program is being
	// drafted; transfer attribution then reports zero for both tracks.

	if err := s.programRepo.Create(ctx, program); err != nil {
		if errors.Is(err, repositories.ErrProgramAlreadyExists) {
			return ErrProgramAlreadyExists
		}
		return fmt.Errorf("error creating program: %w", err)
	}
	return nil
}

// GetProgramByID retrieves a program by ID
func (s *ProgramService) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: ID must be positive", ErrProgramValidation)
	}

	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}
	return program, nil
}

// GetAllPrograms retrieves all programs
func (s *ProgramService) GetAllPrograms(ctx context.Context) ([]*models.Program, error) {
	programs, err := s.programRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, nil
}

// DeleteProgram removes a program
func (s *ProgramService) DeleteProgram(ctx context.Context, id int64) error {
	err := s.programRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProgramNotFound):
			return ErrProgramNotFound
		case errors.Is(err, repositories.ErrProgramHasRelations):
			return ErrProgramHasRelations
		}
		return fmt.Errorf("error deleting program: %w", err)
	}
	return nil
}
