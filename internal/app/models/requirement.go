package models

import (
	"errors"
	"fmt"
)

// EligibleGroupName is the canonical group name of a SIMPLE requirement.
// SIMPLE requirements are normalized at construction to carry exactly one
// group with this name, so the evaluator never special-cases a missing group.
const EligibleGroupName = "Eligible"

// Requirement model errors
var (
	ErrDuplicateGroupName  = errors.New("group name already exists in requirement")
	ErrGroupNotInRequirement = errors.New("group not found in requirement")
	ErrOptionNotInGroup    = errors.New("option not found in group")
	ErrSimpleGroupImmutable = errors.New("cannot add or remove groups of a SIMPLE requirement")
	ErrNegativeCredits     = errors.New("credits_required must be non-negative")
	ErrConstraintNotInRequirement = errors.New("constraint not found in requirement")
	ErrScopeGroupNotFound  = errors.New("constraint scope references a group that does not exist")
)

// CourseOption is one eligible course entry in a group's pool. IsPreferred is
// an advisory hint only; it never affects satisfaction.
type CourseOption struct {
	ID          int64  `json:"id" db:"id"`
	GroupID     int64  `json:"groupId" db:"group_id"`
	CourseCode  string `json:"courseCode" db:"course_code"`
	Institution string `json:"institution" db:"institution"`
	IsPreferred bool   `json:"isPreferred" db:"is_preferred"`
}

// Key returns the catalog identity the option points at
func (o *CourseOption) Key() CourseKey {
	return CourseKey{Code: o.CourseCode, Institution: o.Institution}
}

// Group is a mandatory sub-pool within a requirement. Names are unique within
// their requirement.
type Group struct {
	ID            int64          `json:"id" db:"id"`
	RequirementID int64          `json:"requirementId" db:"requirement_id"`
	Name          string         `json:"name" db:"group_name"`
	Position      int            `json:"position" db:"position"`
	Options       []CourseOption `json:"options"`
}

// Requirement is one named demand of a program version. A requirement belongs
// to the catalog version identified by (ProgramID, Semester, Year).
type Requirement struct {
	ID              int64           `json:"id" db:"id"`
	ProgramID       int64           `json:"programId" db:"program_id"`
	Semester        Term            `json:"semester" db:"semester"`
	Year            int             `json:"year" db:"year"`
	Category        string          `json:"category" db:"category"`
	Type            RequirementType `json:"type" db:"requirement_type"`
	CreditsRequired int             `json:"creditsRequired" db:"credits_required"`
	Description     string          `json:"description,omitempty" db:"description"`
	Groups          []Group         `json:"groups"`
	Constraints     []Constraint    `json:"constraints"`
}

// NewRequirement builds a requirement with its invariants established.
// SIMPLE requirements get their single canonical "Eligible" group here.
func NewRequirement(programID int64, semester Term, year int, category string, reqType RequirementType, creditsRequired int) (*Requirement, error) {
	if creditsRequired < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCredits, creditsRequired)
	}
	r := &Requirement{
		ProgramID:       programID,
		Semester:        semester,
		Year:            year,
		Category:        category,
		Type:            reqType,
		CreditsRequired: creditsRequired,
	}
	if reqType == RequirementSimple {
		r.Groups = []Group{{Name: EligibleGroupName}}
	}
	return r, nil
}

// Normalize repairs a requirement loaded from storage: a SIMPLE requirement
// without its implicit group gets one, and group positions are reasserted.
func (r *Requirement) Normalize() {
	if r.Type == RequirementSimple && len(r.Groups) == 0 {
		r.Groups = []Group{{RequirementID: r.ID, Name: EligibleGroupName}}
	}
	for i := range r.Groups {
		r.Groups[i].Position = i
	}
}

// GroupByName returns the named group, or nil if absent
func (r *Requirement) GroupByName(name string) *Group {
	for i := range r.Groups {
		if r.Groups[i].Name == name {
			return &r.Groups[i]
		}
	}
	return nil
}

// ConstraintsFor returns the constraints visible for a group name. An empty
// name returns only unscoped constraints; a group name returns constraints
// scoped to exactly that group.
func (r *Requirement) ConstraintsFor(groupName string) []Constraint {
	var out []Constraint
	for _, c := range r.Constraints {
		if c.Scope.GroupName == groupName {
			out = append(out, c)
		}
	}
	return out
}

// AddGroup appends a group to a GROUPED requirement. Group names must be
// unique within the requirement.
func (r *Requirement) AddGroup(name string) (*Group, error) {
	if r.Type == RequirementSimple {
		return nil, ErrSimpleGroupImmutable
	}
	if r.GroupByName(name) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateGroupName, name)
	}
	r.Groups = append(r.Groups, Group{RequirementID: r.ID, Name: name, Position: len(r.Groups)})
	return &r.Groups[len(r.Groups)-1], nil
}

// RemoveGroup removes a group from a GROUPED requirement. Constraints scoped
// to the removed group are reclassified as unscoped rather than left dangling.
func (r *Requirement) RemoveGroup(name string) error {
	if r.Type == RequirementSimple {
		return ErrSimpleGroupImmutable
	}
	idx := -1
	for i := range r.Groups {
		if r.Groups[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrGroupNotInRequirement, name)
	}
	r.Groups = append(r.Groups[:idx], r.Groups[idx+1:]...)
	for i := range r.Groups {
		r.Groups[i].Position = i
	}
	for i := range r.Constraints {
		if r.Constraints[i].Scope.GroupName == name {
			r.Constraints[i].Scope.GroupName = ""
		}
	}
	return nil
}

// AddOption appends a course option to the named group
func (r *Requirement) AddOption(groupName string, opt CourseOption) error {
	g := r.GroupByName(groupName)
	if g == nil {
		return fmt.Errorf("%w: %q", ErrGroupNotInRequirement, groupName)
	}
	g.Options = append(g.Options, opt)
	return nil
}

// RemoveOption removes an option from the named group by option ID
func (r *Requirement) RemoveOption(groupName string, optionID int64) error {
	g := r.GroupByName(groupName)
	if g == nil {
		return fmt.Errorf("%w: %q", ErrGroupNotInRequirement, groupName)
	}
	for i := range g.Options {
		if g.Options[i].ID == optionID {
			g.Options = append(g.Options[:i], g.Options[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrOptionNotInGroup, optionID)
}

// AddConstraint validates and attaches a constraint. A group-scoped
// constraint must reference an existing group of this requirement.
func (r *Requirement) AddConstraint(c Constraint) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Scope.GroupName != "" && r.GroupByName(c.Scope.GroupName) == nil {
		return fmt.Errorf("%w: %q", ErrScopeGroupNotFound, c.Scope.GroupName)
	}
	c.RequirementID = r.ID
	r.Constraints = append(r.Constraints, c)
	return nil
}

// RemoveConstraint detaches a constraint by ID
func (r *Requirement) RemoveConstraint(constraintID int64) error {
	for i := range r.Constraints {
		if r.Constraints[i].ID == constraintID {
			r.Constraints = append(r.Constraints[:i], r.Constraints[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrConstraintNotInRequirement, constraintID)
}

// OptionKeys returns the catalog identities of every option in every group
func (r *Requirement) OptionKeys() []CourseKey {
	var keys []CourseKey
	for _, g := range r.Groups {
		for _, o := range g.Options {
			keys = append(keys, o.Key())
		}
	}
	return keys
}
