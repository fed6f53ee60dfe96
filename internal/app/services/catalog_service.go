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

// Common catalog errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course already exists at this institution")
	ErrCourseValidation    = errors.New("course validation failed")
)

// CatalogService handles course catalog operations
type CatalogService struct {
	courseRepo *repositories.CourseRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(courseRepo *repositories.CourseRepository) *CatalogService {
	return &CatalogService{
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data before database operations
func (s *CatalogService) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", ErrCourseValidation)
	}
	if !validation.IsValidCourseCode(course.Code) {
		return fmt.Errorf("%w: code %q must be a subject prefix plus number", ErrCourseValidation, course.Code)
	}
	if !validation.IsValidName(course.Institution) {
		return fmt.Errorf("%w: institution name is required", ErrCourseValidation)
	}
	if course.Credits < 0 {
		return fmt.Errorf("%w: credits must be non-negative", ErrCourseValidation)
	}
	if course.Level < 0 {
		return fmt.Errorf("%w: level must be non-negative", ErrCourseValidation)
	}
	for _, tag := range course.Tags {
		if !validation.IsValidTag(tag) {
			return fmt.Errorf("%w: tag %q must be lowercase snake_case", ErrCourseValidation, tag)
		}
	}
	return nil
}

// CreateCourse adds a course to the catalog
func (s *CatalogService) CreateCourse(ctx context.Context, course *models.Course) error {
	course.Code = strings.TrimSpace(course.Code)
	course.Institution = strings.TrimSpace(course.Institution)

	if err := s.validateCourse(course); err != nil {
		return err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrCourseAlreadyExists) {
			return ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetCourse retrieves one course by catalog identity
func (s *CatalogService) GetCourse(ctx context.Context, code, institution string) (*models.Course, error) {
	key := models.CourseKey{Code: strings.TrimSpace(code), Institution: strings.TrimSpace(institution)}
	course, err := s.courseRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// SearchCourses lists catalog courses filtered by institution and/or subject
func (s *CatalogService) SearchCourses(ctx context.Context, institution, subject string) ([]*models.Course, error) {
	courses, err := s.courseRepo.Search(ctx, strings.TrimSpace(institution), strings.ToUpper(strings.TrimSpace(subject)))
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	return courses, nil
}
