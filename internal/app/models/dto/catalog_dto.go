package dto

// CreateCourseRequest is the payload for adding a catalog course
type CreateCourseRequest struct {
	Code          string   `json:"code" binding:"required"`
	Institution   string   `json:"institution" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Credits       float64  `json:"credits" binding:"gte=0"`
	Level         int      `json:"level" binding:"gte=0"`
	Tags          []string `json:"tags"`
	Prerequisites string   `json:"prerequisites"`
}
