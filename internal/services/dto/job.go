package dto

import (
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

type CreateJobRequest struct {
	Title               string  `json:"title" binding:"required" validate:"required,max=255"`
	Description         string  `json:"description" binding:"required" validate:"required"`
	Company             string  `json:"company" binding:"required" validate:"required,max=255"`
	Location            string  `json:"location" binding:"required" validate:"required,max=255"`
	Salary              *string `json:"salary" validate:"omitempty,max=100"`
	Type                string  `json:"type" binding:"required" validate:"required,is-job-type"`
	Category            string  `json:"category" binding:"required" validate:"required,max=100"`
	ApplicationDeadline *string `json:"application_deadline" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateJobRequest struct {
	Title               *string `json:"title" validate:"omitempty,max=255"`
	Description         *string `json:"description"`
	Company             *string `json:"company" validate:"omitempty,max=255"`
	Location            *string `json:"location" validate:"omitempty,max=255"`
	Salary              *string `json:"salary" validate:"omitempty,max=100"`
	Type                *string `json:"type" validate:"omitempty,is-job-type"`
	Category            *string `json:"category" validate:"omitempty,max=100"`
	ApplicationDeadline *string `json:"application_deadline" validate:"omitempty,datetime=2006-01-02"`
	IsActive            *bool   `json:"is_active"`
}

// JobListFilter - query-параметры GET /jobs
type JobListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type" validate:"omitempty,is-job-type"`
	Category string `form:"category"`
	Location string `form:"location"`
}

// JobResponse - вакансия с вычисляемым признаком истечения дедлайна
type JobResponse struct {
	models.Job
	IsExpired bool `json:"is_expired"`
}

func NewJobResponse(job *models.Job, now time.Time) *JobResponse {
	return &JobResponse{Job: *job, IsExpired: job.IsExpired(now)}
}

// EmployerJobResponse - вакансия работодателя со счетчиком заявок
type EmployerJobResponse struct {
	repositories.JobWithCount
	IsExpired bool `json:"is_expired"`
}
