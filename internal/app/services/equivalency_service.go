package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecetin/gradpath/internal/app/models"
	"github.com/ecetin/gradpath/internal/app/repositories"
)

// Common equivalency errors
var (
	ErrEquivalencyNotFound      = errors.New("equivalency not found")
	ErrEquivalencyAlreadyExists = errors.New("equivalency already recorded")
	ErrEquivalencyValidation    = errors.New("equivalency validation failed")
)

// EquivalencyService handles course equivalency records
type EquivalencyService struct {
	equivalencyRepo *repositories.EquivalencyRepository
}

// NewEquivalencyService creates a new equivalency service instance
func NewEquivalencyService(equivalencyRepo *repositories.EquivalencyRepository) *EquivalencyService {
	return &EquivalencyService{
		equivalencyRepo: equivalencyRepo,
	}
}

// CreateEquivalency records that a course transfers into an institution
func (s *EquivalencyService) CreateEquivalency(ctx context.Context, eq *models.Equivalency) error {
	eq.FromCourseCode = strings.TrimSpace(eq.FromCourseCode)
	eq.FromInstitution = strings.TrimSpace(eq.FromInstitution)
	eq.ToInstitution = strings.TrimSpace(eq.ToInstitution)

	if eq.FromCourseCode == "" || eq.FromInstitution == "" || eq.ToInstitution == "" {
		return fmt.Errorf("%w: source course and both institutions are required", ErrEquivalencyValidation)
	}
	if eq.FromInstitution == eq.ToInstitution {
		return fmt.Errorf("%w: source and destination institutions must differ", ErrEquivalencyValidation)
	}

	if err := s.equivalencyRepo.Create(ctx, eq); err != nil {
		if errors.Is(err, repositories.ErrEquivalencyAlreadyExists) {
			return ErrEquivalencyAlreadyExists
		}
		return fmt.Errorf("error creating equivalency: %w", err)
	}
	return nil
}

// GetEquivalenciesTo lists every equivalency into an institution
func (s *EquivalencyService) GetEquivalenciesTo(ctx context.Context, institution string) ([]*models.Equivalency, error) {
	institution = strings.TrimSpace(institution)
	if institution == "" {
		return nil, fmt.Errorf("%w: destination institution is required", ErrEquivalencyValidation)
	}

	equivalencies, err := s.equivalencyRepo.GetByToInstitution(ctx, institution)
	if err != nil {
		return nil, fmt.Errorf("error retrieving equivalencies: %w", err)
	}
	return equivalencies, nil
}

// DeleteEquivalency removes an equivalency record
func (s *EquivalencyService) DeleteEquivalency(ctx context.Context, id int64) error {
	if err := s.equivalencyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEquivalencyNotFound) {
			return ErrEquivalencyNotFound
		}
		return fmt.Errorf("error deleting equivalency: %w", err)
	}
	return nil
}
