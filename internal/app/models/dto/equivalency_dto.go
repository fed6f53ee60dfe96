package dto

// CreateEquivalencyRequest is the payload for recording a course equivalency
type CreateEquivalencyRequest struct {
	FromCourseCode  string `json:"fromCourseCode" binding:"required"`
	FromInstitution string `json:"fromInstitution" binding:"required"`
	ToCourseCode    string `json:"toCourseCode"`
	ToInstitution   string `json:"toInstitution" binding:"required"`
}
