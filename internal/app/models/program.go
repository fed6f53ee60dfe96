package models

// Program represents a degree program a student plans toward. The target
// institution is where the degree would be granted; transfer attribution
// measures progress toward it.
type Program struct {
	ID                int64  `json:"id" db:"id"`
	Name              string `json:"name" db:"name"`
	TargetInstitution string `json:"targetInstitution" db:"target_institution"`
	Description       string `json:"description,omitempty" db:"description"`
}
