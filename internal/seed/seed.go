package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ecetin/gradpath/internal/app/models"
	appRepos "github.com/ecetin/gradpath/internal/app/repositories"
)

// CreateSampleData seeds a small catalog, one program with its requirement
// model and a couple of equivalencies. Intended for development setups only;
// every insert tolerates already-present data.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating sample data...")
	var finalErr error

	// --- Catalog --- //
	courses := []*appModels.Course{
		{Code: "CS 101", Institution: "State University", Title: "Introduction to Programming", Credits: 4, Level: 100, Tags: []string{"programming"}},
		{Code: "CS 201", Institution: "State University", Title: "Data Structures", Credits: 4, Level: 200, Tags: []string{"programming"}, Prerequisites: "CS 101"},
		{Code: "CS 301", Institution: "State University", Title: "Algorithms", Credits: 3, Level: 300, Tags: []string{"theory"}, Prerequisites: "CS 201"},
		{Code: "MATH 101", Institution: "State University", Title: "Calculus I", Credits: 4, Level: 100, Tags: []string{"math"}},
		{Code: "MATH 201", Institution: "State University", Title: "Linear Algebra", Credits: 3, Level: 200, Tags: []string{"math"}},
		{Code: "PHYS 101", Institution: "State University", Title: "Physics I", Credits: 4, Level: 100, Tags: []string{"lab_science"}},
		{Code: "PHYS 102", Institution: "State University", Title: "Physics II", Credits: 4, Level: 100, Tags: []string{"lab_science"}, Prerequisites: "PHYS 101"},
		{Code: "CHEM 101", Institution: "State University", Title: "General Chemistry I", Credits: 4, Level: 100, Tags: []string{"lab_science"}},
		{Code: "CHEM 102", Institution: "State University", Title: "General Chemistry II", Credits: 4, Level: 100, Tags: []string{"lab_science"}, Prerequisites: "CHEM 101"},
		{Code: "MATH 110", Institution: "City College", Title: "Calculus I", Credits: 4, Level: 100, Tags: []string{"math"}},
		{Code: "CS 110", Institution: "City College", Title: "Programming Fundamentals", Credits: 4, Level: 100, Tags: []string{"programming"}},
	}
	for _, course := range courses {
		if err := repos.Course.Create(ctx, course); err != nil && !errors.Is(err, appRepos.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Program --- //
	program := &appModels.Program{
		Name:              "Computer Science BS",
		TargetInstitution: "State University",
		Description:       "Sample four-year computer science program",
	}
	if err := repos.Program.Create(ctx, program); err != nil {
		if errors.Is(err, appRepos.ErrProgramAlreadyExists) {
			// Requirement model was seeded alongside the program
			lgr.Info().Msg("Sample program already present, skipping requirement seed")
			return finalErr
		}
		lgr.Error().Err(err).Msg("Error creating sample program")
		return errors.Join(finalErr, err)
	}

	// --- Core requirement (SIMPLE) --- //
	core, err := appModels.NewRequirement(program.ID, appModels.TermFall, 2025, "Core", appModels.RequirementSimple, 15)
	if err == nil {
		core.Description = "Computer science core"
		err = repos.Requirement.Create(ctx, core)
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating core requirement")
		finalErr = errors.Join(finalErr, err)
	} else {
		eligible := core.GroupByName(appModels.EligibleGroupName)
		for _, code := range []string{"CS 101", "CS 201", "CS 301", "MATH 101", "MATH 201"} {
			option := appModels.CourseOption{GroupID: eligible.ID, CourseCode: code, Institution: "State University"}
			if err := repos.Requirement.CreateOption(ctx, &option); err != nil {
				lgr.Error().Err(err).Str("code", code).Msg("Error creating core option")
				finalErr = errors.Join(finalErr, err)
			}
		}

		minCredits := 15.0
		creditFloor := appModels.Constraint{
			RequirementID: core.ID,
			Type:          appModels.ConstraintCredits,
			Params:        appModels.CreditRangeParams{Min: &minCredits},
			Description:   "At least 15 core credits",
		}
		if err := repos.Requirement.CreateConstraint(ctx, &creditFloor); err != nil {
			lgr.Error().Err(err).Msg("Error creating core constraint")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Lab science requirement (GROUPED) --- //
	science, err := appModels.NewRequirement(program.ID, appModels.TermFall, 2025, "Lab Science", appModels.RequirementGrouped, 8)
	if err == nil {
		science.Description = "Two-course laboratory science sequence"
		if _, err = science.AddGroup("Physics"); err == nil {
			_, err = science.AddGroup("Chemistry")
		}
		if err == nil {
			err = repos.Requirement.Create(ctx, science)
		}
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating lab science requirement")
		finalErr = errors.Join(finalErr, err)
	} else {
		groupCourses := map[string][]string{
			"Physics":   {"PHYS 101", "PHYS 102"},
			"Chemistry": {"CHEM 101", "CHEM 102"},
		}
		for name, codes := range groupCourses {
			group := science.GroupByName(name)
			for _, code := range codes {
				option := appModels.CourseOption{GroupID: group.ID, CourseCode: code, Institution: "State University"}
				if err := repos.Requirement.CreateOption(ctx, &option); err != nil {
					lgr.Error().Err(err).Str("code", code).Msg("Error creating science option")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}

		twoCourses := 2
		sequence := appModels.Constraint{
			RequirementID: science.ID,
			Type:          appModels.ConstraintCourses,
			Params:        appModels.CourseCountParams{Min: &twoCourses},
			Scope:         appModels.ConstraintScope{GroupName: "Physics"},
			Description:   "Complete the physics sequence",
		}
		if err := repos.Requirement.CreateConstraint(ctx, &sequence); err != nil {
			lgr.Error().Err(err).Msg("Error creating science constraint")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Equivalencies --- //
	equivalencies := []*appModels.Equivalency{
		{FromCourseCode: "MATH 110", FromInstitution: "City College", ToCourseCode: "MATH 101", ToInstitution: "State University"},
		{FromCourseCode: "CS 110", FromInstitution: "City College", ToCourseCode: "CS 101", ToInstitution: "State University"},
	}
	for _, eq := range equivalencies {
		if err := repos.Equivalency.Create(ctx, eq); err != nil && !errors.Is(err, appRepos.ErrEquivalencyAlreadyExists) {
			lgr.Error().Err(err).Str("from", eq.FromCourseCode).Msg("Error creating sample equivalency")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Sample data seeding finished")
	return finalErr
}
