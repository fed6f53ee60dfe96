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

// Plan error types
var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPlanCourseNotFound = errors.New("plan course not found")
)

// PlanRepository handles database operations for student plans
type PlanRepository struct {
	db *pgxpool.Pool
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{
		db: db,
	}
}

// Create inserts a new plan
func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	query := `
		INSERT INTO plans (student_name, program_id, semester, year)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, plan.StudentName, plan.ProgramID, plan.Semester, plan.Year).
		Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating plan: %w", err)
	}

	return nil
}

// GetByID retrieves a plan with its courses
func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*models.Plan, error) {
	query := `
		SELECT id, student_name, program_id, semester, year, created_at, updated_at
		FROM plans
		WHERE id = $1
	`

	var plan models.Plan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID, &plan.StudentName, &plan.ProgramID,
		&plan.Semester, &plan.Year, &plan.CreatedAt, &plan.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}

	courses, err := r.GetCourses(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		plan.Courses = append(plan.Courses, *c)
	}

	return &plan, nil
}

// GetCourses retrieves every course attached to a plan
func (r *PlanRepository) GetCourses(ctx context.Context, planID int64) ([]*models.PlanCourse, error) {
	query := `
		SELECT id, plan_id, course_code, institution, status, requirement_category,
		       credits, semester, year, grade
		FROM plan_courses
		WHERE plan_id = $1
		ORDER BY year, semester, id
	`

	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.PlanCourse
	for rows.Next() {
		var pc models.PlanCourse
		var category, grade sql.NullString
		var credits sql.NullFloat64
		if err := rows.Scan(
			&pc.ID, &pc.PlanID, &pc.CourseCode, &pc.Institution, &pc.Status,
			&category, &credits, &pc.Semester, &pc.Year, &grade,
		); err != nil {
			return nil, err
		}
		pc.RequirementCategory = helpers.NullStringValue(category)
		pc.Grade = helpers.NullStringValue(grade)
		pc.Credits = helpers.NullFloat64Ptr(credits)
		courses = append(courses, &pc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// AddCourse attaches a course to a plan
func (r *PlanRepository) AddCourse(ctx context.Context, pc *models.PlanCourse) error {
	query := `
		INSERT INTO plan_courses (plan_id, course_code, institution, status, requirement_category,
		                          credits, semester, year, grade)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		pc.PlanID, pc.CourseCode, pc.Institution, pc.Status,
		helpers.GetNullString(pc.RequirementCategory),
		helpers.GetNullFloat64(pc.Credits),
		pc.Semester, pc.Year,
		helpers.GetNullString(pc.Grade),
	).Scan(&pc.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrPlanNotFound
		}
		return fmt.Errorf("error adding plan course: %w", err)
	}

	return nil
}

// UpdateCourse updates a plan course's mutable fields (status, category,
// credit override, term placement and grade).
func (r *PlanRepository) UpdateCourse(ctx context.Context, pc *models.PlanCourse) error {
	query := `
		UPDATE plan_courses
		SET status = $1, requirement_category = $2, credits = $3,
		    semester = $4, year = $5, grade = $6
		WHERE id = $7 AND plan_id = $8
	`

	result, err := r.db.Exec(ctx, query,
		pc.Status,
		helpers.GetNullString(pc.RequirementCategory),
		helpers.GetNullFloat64(pc.Credits),
		pc.Semester, pc.Year,
		helpers.GetNullString(pc.Grade),
		pc.ID, pc.PlanID,
	)
	if err != nil {
		return fmt.Errorf("error updating plan course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrPlanCourseNotFound
	}

	return nil
}

// RemoveCourse detaches a course from a plan
func (r *PlanRepository) RemoveCourse(ctx context.Context, planID, planCourseID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM plan_courses WHERE id = $1 AND plan_id = $2`, planCourseID, planID)
	if err != nil {
		return fmt.Errorf("error removing plan course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrPlanCourseNotFound
	}
	return nil
}

// Delete removes a plan and its courses
func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}
