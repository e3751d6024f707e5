package request

type CreateCourtRequest struct {
	Name    string  `json:"name" binding:"required"`
	Surface *string `json:"surface,omitempty"`
}

type UpdateCourtRequest struct {
	Name     string  `json:"name" binding:"required"`
	Surface  *string `json:"surface,omitempty"`
	IsActive bool    `json:"is_active"`
}
