package dto

// CreateProgramRequest is the payload for creating a degree program
type CreateProgramRequest struct {
	Name              string `json:"name" binding:"required"`
	TargetInstitution string `json:"targetInstitution"`
	Description       string `json:"description"`
}
