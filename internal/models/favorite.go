package models

type Favorite struct {
	BaseModel
	CandidateID string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_candidate_job" json:"candidate_id"`
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_candidate_job" json:"job_id"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
