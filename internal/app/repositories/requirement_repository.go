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

// Requirement error types
var (
	ErrRequirementNotFound = errors.New("requirement not found")
	ErrGroupNotFound       = errors.New("requirement group not found")
	ErrGroupAlreadyExists  = errors.New("group with this name already exists in the requirement")
	ErrOptionNotFound      = errors.New("course option not found")
	ErrConstraintNotFound  = errors.New("constraint not found")
)

// RequirementRepository handles database operations for the requirement model:
// requirements, their groups, course options and constraints.
type RequirementRepository struct {
	db *pgxpool.Pool
}

// NewRequirementRepository creates a new requirement repository
func NewRequirementRepository(db *pgxpool.Pool) *RequirementRepository {
	return &RequirementRepository{
		db: db,
	}
}

// Create inserts a requirement together with any groups it was constructed
// with (a SIMPLE requirement always carries its implicit group).
func (r *RequirementRepository) Create(ctx context.Context, req *models.Requirement) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO requirements (program_id, semester, year, category, requirement_type, credits_required, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = tx.QueryRow(ctx, query,
		req.ProgramID, req.Semester, req.Year, req.Category, req.Type, req.CreditsRequired, req.Description,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("error creating requirement: %w", err)
	}

	for i := range req.Groups {
		g := &req.Groups[i]
		g.RequirementID = req.ID
		g.Position = i
		err = tx.QueryRow(ctx,
			`INSERT INTO requirement_groups (requirement_id, group_name, position) VALUES ($1, $2, $3) RETURNING id`,
			g.RequirementID, g.Name, g.Position,
		).Scan(&g.ID)
		if err != nil {
			return fmt.Errorf("error creating requirement group: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID loads one requirement with its full tree of groups, options and
// constraints.
func (r *RequirementRepository) GetByID(ctx context.Context, id int64) (*models.Requirement, error) {
	query := `
		SELECT id, program_id, semester, year, category, requirement_type, credits_required, description
		FROM requirements
		WHERE id = $1
	`

	var req models.Requirement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.ProgramID, &req.Semester, &req.Year,
		&req.Category, &req.Type, &req.CreditsRequired, &req.Description,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrRequirementNotFound
		}
		return nil, fmt.Errorf("error retrieving requirement: %w", err)
	}

	if err := r.loadTrees(ctx, []*models.Requirement{&req}); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByProgramVersion loads every requirement of one program catalog version
// with their full trees.
func (r *RequirementRepository) GetByProgramVersion(ctx context.Context, programID int64, semester models.Term, year int) ([]*models.Requirement, error) {
	query := `
		SELECT id, program_id, semester, year, category, requirement_type, credits_required, description
		FROM requirements
		WHERE program_id = $1 AND semester = $2 AND year = $3
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, programID, semester, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*models.Requirement
	for rows.Next() {
		var req models.Requirement
		if err := rows.Scan(
			&req.ID, &req.ProgramID, &req.Semester, &req.Year,
			&req.Category, &req.Type, &req.CreditsRequired, &req.Description,
		); err != nil {
			return nil, err
		}
		reqs = append(reqs, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadTrees(ctx, reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// loadTrees populates groups, options and constraints for the given
// requirements in three batched queries.
func (r *RequirementRepository) loadTrees(ctx context.Context, reqs []*models.Requirement) error {
	if len(reqs) == 0 {
		return nil
	}

	ids := make([]int64, len(reqs))
	byID := make(map[int64]*models.Requirement, len(reqs))
	for i, req := range reqs {
		ids[i] = req.ID
		byID[req.ID] = req
	}

	groupRows, err := r.db.Query(ctx, `
		SELECT id, requirement_id, group_name, position
		FROM requirement_groups
		WHERE requirement_id = ANY($1)
		ORDER BY requirement_id, position
	`, ids)
	if err != nil {
		return fmt.Errorf("error retrieving groups: %w", err)
	}
	defer groupRows.Close()

	groupsByReq := make(map[int64][]models.Group)
	for groupRows.Next() {
		var g models.Group
		if err := groupRows.Scan(&g.ID, &g.RequirementID, &g.Name, &g.Position); err != nil {
			return err
		}
		groupsByReq[g.RequirementID] = append(groupsByReq[g.RequirementID], g)
	}
	if err := groupRows.Err(); err != nil {
		return err
	}
	groupRows.Close()

	// Index group pointers only after every slice is final; appending above
	// would invalidate them.
	groupByID := make(map[int64]*models.Group)
	for reqID, groups := range groupsByReq {
		req := byID[reqID]
		req.Groups = groups
		for i := range req.Groups {
			groupByID[req.Groups[i].ID] = &req.Groups[i]
		}
	}

	optionRows, err := r.db.Query(ctx, `
		SELECT o.id, o.group_id, o.course_code, o.institution, o.is_preferred
		FROM course_options o
		JOIN requirement_groups g ON g.id = o.group_id
		WHERE g.requirement_id = ANY($1)
		ORDER BY o.id
	`, ids)
	if err != nil {
		return fmt.Errorf("error retrieving course options: %w", err)
	}
	defer optionRows.Close()

	for optionRows.Next() {
		var o models.CourseOption
		if err := optionRows.Scan(&o.ID, &o.GroupID, &o.CourseCode, &o.Institution, &o.IsPreferred); err != nil {
			return err
		}
		if g, ok := groupByID[o.GroupID]; ok {
			g.Options = append(g.Options, o)
		}
	}
	if err := optionRows.Err(); err != nil {
		return err
	}
	optionRows.Close()

	constraintRows, err := r.db.Query(ctx, `
		SELECT id, requirement_id, constraint_type,
		       credits_min, credits_max, courses_min, courses_max,
		       level, courses, tag, credits,
		       scope_group_name, scope_subjects, priority, description
		FROM constraints
		WHERE requirement_id = ANY($1)
		ORDER BY requirement_id, priority, id
	`, ids)
	if err != nil {
		return fmt.Errorf("error retrieving constraints: %w", err)
	}
	defer constraintRows.Close()

	for constraintRows.Next() {
		c, err := scanConstraint(constraintRows)
		if err != nil {
			return err
		}
		req := byID[c.RequirementID]
		req.Constraints = append(req.Constraints, *c)
	}
	if err := constraintRows.Err(); err != nil {
		return err
	}

	// A SIMPLE requirement whose implicit group went missing in storage is
	// repaired here rather than crashing the evaluator.
	for _, req := range reqs {
		req.Normalize()
	}
	return nil
}

// constraintRow mirrors the nullable constraint columns
type constraintRow struct {
	creditsMin sql.NullFloat64
	creditsMax sql.NullFloat64
	coursesMin sql.NullInt32
	coursesMax sql.NullInt32
	level      sql.NullInt32
	courses    sql.NullInt32
	tag        sql.NullString
	credits    sql.NullFloat64
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConstraint(row rowScanner) (*models.Constraint, error) {
	var c models.Constraint
	var raw constraintRow
	var scopeGroup sql.NullString
	var scopeSubjects []string

	err := row.Scan(
		&c.ID, &c.RequirementID, &c.Type,
		&raw.creditsMin, &raw.creditsMax, &raw.coursesMin, &raw.coursesMax,
		&raw.level, &raw.courses, &raw.tag, &raw.credits,
		&scopeGroup, &scopeSubjects, &c.Priority, &c.Description,
	)
	if err != nil {
		return nil, err
	}

	c.Scope = models.ConstraintScope{
		GroupName:    helpers.NullStringValue(scopeGroup),
		SubjectCodes: scopeSubjects,
	}
	c.Params = paramsFromRow(c.Type, raw)
	return &c, nil
}

// paramsFromRow rebuilds the typed params payload from the nullable columns.
// Unknown types leave Params nil; the evaluator reports those as
// configuration errors instead of failing the load.
func paramsFromRow(t models.ConstraintType, raw constraintRow) models.ConstraintParams {
	switch t {
	case models.ConstraintCredits:
		return models.CreditRangeParams{
			Min: nullFloat(raw.creditsMin),
			Max: nullFloat(raw.creditsMax),
		}
	case models.ConstraintCourses:
		return models.CourseCountParams{
			Min: nullInt(raw.coursesMin),
			Max: nullInt(raw.coursesMax),
		}
	case models.ConstraintMinCoursesAtLevel:
		return models.LevelCountParams{
			Level:   int(raw.level.Int32),
			Courses: int(raw.courses.Int32),
		}
	case models.ConstraintMinTagCourses:
		return models.TagCountParams{
			Tag:     raw.tag.String,
			Courses: int(raw.courses.Int32),
		}
	case models.ConstraintMaxTagCredits:
		return models.TagCreditCapParams{
			Tag:     raw.tag.String,
			Credits: raw.credits.Float64,
		}
	}
	return nil
}

func nullFloat(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	v := nf.Float64
	return &v
}

func nullInt(ni sql.NullInt32) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int32)
	return &v
}

// CreateGroup adds a group to a requirement
func (r *RequirementRepository) CreateGroup(ctx context.Context, group *models.Group) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO requirement_groups (requirement_id, group_name, position)
		 VALUES ($1, $2, (SELECT COALESCE(MAX(position), -1) + 1 FROM requirement_groups WHERE requirement_id = $1))
		 RETURNING id, position`,
		group.RequirementID, group.Name,
	).Scan(&group.ID, &group.Position)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_requirement_groups_name") {
			return ErrGroupAlreadyExists
		}
		return fmt.Errorf("error creating group: %w", err)
	}
	return nil
}

// DeleteGroup removes a group and its options. Constraints scoped to the
// removed group are reclassified as unscoped in the same transaction so no
// dangling scope reference survives.
func (r *RequirementRepository) DeleteGroup(ctx context.Context, requirementID int64, groupName string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := tx.Exec(ctx,
		`DELETE FROM requirement_groups WHERE requirement_id = $1 AND group_name = $2`,
		requirementID, groupName)
	if err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrGroupNotFound
	}

	_, err = tx.Exec(ctx,
		`UPDATE constraints SET scope_group_name = NULL WHERE requirement_id = $1 AND scope_group_name = $2`,
		requirementID, groupName)
	if err != nil {
		return fmt.Errorf("error reclassifying scoped constraints: %w", err)
	}

	return tx.Commit(ctx)
}

// CreateOption adds a course option to a group
func (r *RequirementRepository) CreateOption(ctx context.Context, option *models.CourseOption) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO course_options (group_id, course_code, institution, is_preferred)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		option.GroupID, option.CourseCode, option.Institution, option.IsPreferred,
	).Scan(&option.ID)
	if err != nil {
		return fmt.Errorf("error creating course option: %w", err)
	}
	return nil
}

// DeleteOption removes a course option by ID
func (r *RequirementRepository) DeleteOption(ctx context.Context, optionID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM course_options WHERE id = $1`, optionID)
	if err != nil {
		return fmt.Errorf("error deleting course option: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrOptionNotFound
	}
	return nil
}

// CreateConstraint attaches a constraint to a requirement
func (r *RequirementRepository) CreateConstraint(ctx context.Context, c *models.Constraint) error {
	raw := rowFromParams(c.Params)
	var scopeGroup sql.NullString
	if c.Scope.GroupName != "" {
		scopeGroup = sql.NullString{String: c.Scope.GroupName, Valid: true}
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO constraints (requirement_id, constraint_type,
			credits_min, credits_max, courses_min, courses_max,
			level, courses, tag, credits,
			scope_group_name, scope_subjects, priority, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`,
		c.RequirementID, c.Type,
		raw.creditsMin, raw.creditsMax, raw.coursesMin, raw.coursesMax,
		raw.level, raw.courses, raw.tag, raw.credits,
		scopeGroup, c.Scope.SubjectCodes, c.Priority, c.Description,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("error creating constraint: %w", err)
	}
	return nil
}

// rowFromParams flattens a typed params payload into nullable columns
func rowFromParams(p models.ConstraintParams) constraintRow {
	var raw constraintRow
	switch params := p.(type) {
	case models.CreditRangeParams:
		raw.creditsMin = helpers.GetNullFloat64(params.Min)
		raw.creditsMax = helpers.GetNullFloat64(params.Max)
	case models.CourseCountParams:
		if params.Min != nil {
			raw.coursesMin = sql.NullInt32{Int32: int32(*params.Min), Valid: true}
		}
		if params.Max != nil {
			raw.coursesMax = sql.NullInt32{Int32: int32(*params.Max), Valid: true}
		}
	case models.LevelCountParams:
		raw.level = sql.NullInt32{Int32: int32(params.Level), Valid: true}
		raw.courses = sql.NullInt32{Int32: int32(params.Courses), Valid: true}
	case models.TagCountParams:
		raw.tag = sql.NullString{String: params.Tag, Valid: true}
		raw.courses = sql.NullInt32{Int32: int32(params.Courses), Valid: true}
	case models.TagCreditCapParams:
		raw.tag = sql.NullString{String: params.Tag, Valid: true}
		raw.credits = sql.NullFloat64{Float64: params.Credits, Valid: true}
	}
	return raw
}

// DeleteConstraint removes a constraint by ID
func (r *RequirementRepository) DeleteConstraint(ctx context.Context, constraintID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM constraints WHERE id = $1`, constraintID)
	if err != nil {
		return fmt.Errorf("error deleting constraint: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrConstraintNotFound
	}
	return nil
}

// Delete removes a requirement and its whole tree (groups, options and
// constraints cascade at the schema level).
func (r *RequirementRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM requirements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting requirement: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrRequirementNotFound
	}
	return nil
}
