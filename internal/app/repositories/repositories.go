package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository over one shared connection pool
type Repositories struct {
	Course      *CourseRepository
	Program     *ProgramRepository
	Requirement *RequirementRepository
	Plan        *PlanRepository
	Equivalency *EquivalencyRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Course:      NewCourseRepository(db),
		Program:     NewProgramRepository(db),
		Requirement: NewRequirementRepository(db),
		Plan:        NewPlanRepository(db),
		Equivalency: NewEquivalencyRepository(db),
	}
}
