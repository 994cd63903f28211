package dto

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" binding:"required" validate:"required"`
	Resume      string `json:"resume" validate:"omitempty,max=1024"`
}

type UpdateApplicationStatusRequest struct {
	Status   string  `json:"status" binding:"required" validate:"required,is-application-status"`
	Feedback *string `json:"feedback" validate:"omitempty,max=5000"`
}
