package services

import (
	"time"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"gorm.io/datatypes"
)

type JobService interface {
	List(filter *dto.JobListFilter) ([]dto.JobResponse, error)
	Get(jobID string) (*dto.JobResponse, error)
	Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(jobID, actorID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(jobID, actorID string) error
	ListForEmployer(employerID string) ([]dto.EmployerJobResponse, error)
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// List возвращает активные вакансии, отсортированные по дате создания.
// Полный результат без пагинации.
func (s *JobServiceImpl) List(filter *dto.JobListFilter) ([]dto.JobResponse, error) {
	repoFilter := repositories.JobFilter{
		Search:   filter.Search,
		Type:     models.JobType(filter.Type),
		Category: filter.Category,
		Location: filter.Location,
	}

	jobs, err := s.jobRepo.FindActive(repoFilter)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	now := time.Now()
	result := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		result = append(result, *dto.NewJobResponse(&jobs[i], now))
	}
	return result, nil
}

func (s *JobServiceImpl) Get(jobID string) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	return dto.NewJobResponse(job, time.Now()), nil
}

func (s *JobServiceImpl) Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	employer, err := s.findUser(employerID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanCreateJob(employer); err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		EmployerID:          employer.ID,
		Title:               req.Title,
		Description:         req.Description,
		Company:             req.Company,
		Location:            req.Location,
		Salary:              req.Salary,
		Type:                models.JobType(req.Type),
		Category:            req.Category,
		ApplicationDeadline: deadline,
		IsActive:            true,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return dto.NewJobResponse(job, time.Now()), nil
}

func (s *JobServiceImpl) Update(jobID, actorID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	actor, err := s.findUser(actorID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanManageJob(actor, job); err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.Type != nil {
		job.Type = models.JobType(*req.Type)
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.ApplicationDeadline != nil {
		deadline, err := parseDeadline(req.ApplicationDeadline)
		if err != nil {
			return nil, err
		}
		job.ApplicationDeadline = deadline
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return dto.NewJobResponse(job, time.Now()), nil
}

func (s *JobServiceImpl) Delete(jobID, actorID string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}
	actor, err := s.findUser(actorID)
	if err != nil {
		return err
	}
	if err := auth.CanManageJob(actor, job); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(job.ID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) ListForEmployer(employerID string) ([]dto.EmployerJobResponse, error) {
	jobs, err := s.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	now := time.Now()
	result := make([]dto.EmployerJobResponse, 0, len(jobs))
	for i := range jobs {
		result = append(result, dto.EmployerJobResponse{
			JobWithCount: jobs[i],
			IsExpired:    jobs[i].IsExpired(now),
		})
	}
	return result, nil
}

func (s *JobServiceImpl) findJob(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

func parseDeadline(value *string) (*datatypes.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, appErrors.NewBadRequestError("application_deadline must be a date in format YYYY-MM-DD")
	}
	d := datatypes.Date(t)
	return &d, nil
}
