package models

type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate" json:"job_id"`
	CandidateID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate" json:"candidate_id"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	Resume      string            `json:"resume,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Feedback    *string           `json:"feedback,omitempty"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Candidate *User `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
}
