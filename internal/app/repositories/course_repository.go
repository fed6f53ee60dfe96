package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecetin/gradpath/internal/app/models"
	"github.com/ecetin/gradpath/internal/pkg/dberrors"
)

// Course error types
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course already exists at this institution")
)

// CourseRepository handles database operations for the course catalog
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a catalog course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, institution, title, credits, level, tags, prerequisites)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Code,
		course.Institution,
		course.Title,
		course.Credits,
		course.Level,
		course.Tags,
		course.Prerequisites,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByKey retrieves a course by its catalog identity (code, institution)
func (r *CourseRepository) GetByKey(ctx context.Context, key models.CourseKey) (*models.Course, error) {
	query := `
		SELECT id, code, institution, title, credits, level, tags, prerequisites
		FROM courses
		WHERE code = $1 AND institution = $2
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, key.Code, key.Institution).Scan(
		&course.ID,
		&course.Code,
		&course.Institution,
		&course.Title,
		&course.Credits,
		&course.Level,
		&course.Tags,
		&course.Prerequisites,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetByKeys retrieves all catalog courses matching the given identities.
// Identities with no catalog row are simply absent from the result; the
// caller treats them as unresolved references.
func (r *CourseRepository) GetByKeys(ctx context.Context, keys []models.CourseKey) (map[models.CourseKey]*models.Course, error) {
	result := make(map[models.CourseKey]*models.Course, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	codes := make([]string, len(keys))
	institutions := make([]string, len(keys))
	for i, k := range keys {
		codes[i] = k.Code
		institutions[i] = k.Institution
	}

	query := `
		SELECT id, code, institution, title, credits, level, tags, prerequisites
		FROM courses
		WHERE (code, institution) IN (SELECT * FROM unnest($1::text[], $2::text[]))
	`

	rows, err := r.db.Query(ctx, query, codes, institutions)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Institution,
			&course.Title,
			&course.Credits,
			&course.Level,
			&course.Tags,
			&course.Prerequisites,
		); err != nil {
			return nil, err
		}
		result[course.Key()] = &course
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Search retrieves courses filtered by institution and/or subject prefix
func (r *CourseRepository) Search(ctx context.Context, institution, subject string) ([]*models.Course, error) {
	query := `
		SELECT id, code, institution, title, credits, level, tags, prerequisites
		FROM courses
		WHERE ($1 = '' OR institution = $1)
		  AND ($2 = '' OR code LIKE $2 || '%')
		ORDER BY institution, code
	`

	rows, err := r.db.Query(ctx, query, institution, subject)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Institution,
			&course.Title,
			&course.Credits,
			&course.Level,
			&course.Tags,
			&course.Prerequisites,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}
