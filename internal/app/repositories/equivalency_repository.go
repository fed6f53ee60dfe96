package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecetin/gradpath/internal/app/models"
	"github.com/ecetin/gradpath/internal/pkg/dberrors"
	"github.com/ecetin/gradpath/internal/pkg/helpers"
)

// Equivalency error types
var (
	ErrEquivalencyNotFound      = errors.New("equivalency not found")
	ErrEquivalencyAlreadyExists = errors.New("equivalency already recorded for this course and institution")
)

// EquivalencyRepository handles database operations for course equivalencies
type EquivalencyRepository struct {
	db *pgxpool.Pool
}

// NewEquivalencyRepository creates a new equivalency repository
func NewEquivalencyRepository(db *pgxpool.Pool) *EquivalencyRepository {
	return &EquivalencyRepository{
		db: db,
	}
}

// Create records a new equivalency
func (r *EquivalencyRepository) Create(ctx context.Context, eq *models.Equivalency) error {
	query := `
		INSERT INTO equivalencies (from_course_code, from_institution, to_course_code, to_institution)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		eq.FromCourseCode, eq.FromInstitution,
		helpers.GetNullString(eq.ToCourseCode), eq.ToInstitution,
	).Scan(&eq.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrEquivalencyAlreadyExists
		}
		return fmt.Errorf("error creating equivalency: %w", err)
	}

	return nil
}

// GetByToInstitution retrieves every equivalency whose destination is the
// given institution.
func (r *EquivalencyRepository) GetByToInstitution(ctx context.Context, institution string) ([]*models.Equivalency, error) {
	query := `
		SELECT id, from_course_code, from_institution, to_course_code, to_institution
		FROM equivalencies
		WHERE to_institution = $1
		ORDER BY from_institution, from_course_code
	`

	rows, err := r.db.Query(ctx, query, institution)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equivalencies []*models.Equivalency
	for rows.Next() {
		var eq models.Equivalency
		var toCode sql.NullString
		if err := rows.Scan(&eq.ID, &eq.FromCourseCode, &eq.FromInstitution, &toCode, &eq.ToInstitution); err != nil {
			return nil, err
		}
		eq.ToCourseCode = helpers.NullStringValue(toCode)
		equivalencies = append(equivalencies, &eq)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return equivalencies, nil
}

// Delete removes an equivalency record
func (r *EquivalencyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM equivalencies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting equivalency: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrEquivalencyNotFound
	}
	return nil
}
