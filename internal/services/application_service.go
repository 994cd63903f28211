package services

import (
	"time"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type ApplicationService interface {
	Apply(jobID, candidateID string, req *dto.ApplyRequest) (*models.Application, error)
	ListForCandidate(candidateID string) ([]models.Application, error)
	ListForEmployer(employerID string) ([]models.Application, error)
	UpdateStatus(applicationID, actorID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	emailProvider   email.Provider // nil = уведомления отключены
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		emailProvider:   emailProvider,
	}
}

// Apply создает заявку кандидата на вакансию. Повторная заявка на ту же
// вакансию отклоняется ограничением уникальности БД, а не предварительной
// проверкой.
func (s *ApplicationServiceImpl) Apply(jobID, candidateID string, req *dto.ApplyRequest) (*models.Application, error) {
	candidate, err := s.userRepo.FindByID(candidateID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if err := auth.CanApply(candidate, job, time.Now()); err != nil {
		return nil, err
	}

	application := &models.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if appErrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, appErrors.ErrApplicationAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	application.Job = job
	return application, nil
}

func (s *ApplicationServiceImpl) ListForCandidate(candidateID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) ListForEmployer(employerID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return applications, nil
}

// UpdateStatus переводит заявку в новый статус. Разрешены только переходы
// из allowedTransitions: pending и reviewed - рабочие статусы, accepted
// и rejected - терминальные.
func (s *ApplicationServiceImpl) UpdateStatus(applicationID, actorID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if application.Job == nil {
		return nil, appErrors.ErrJobNotFound
	}
	if err := auth.CanReviewApplication(actor, application.Job); err != nil {
		return nil, err
	}

	newStatus := models.ApplicationStatus(req.Status)
	if !newStatus.Valid() {
		return nil, appErrors.NewBadRequestError("Unknown application status: " + req.Status)
	}
	if !models.CanTransition(application.Status, newStatus) {
		return nil, appErrors.ErrInvalidStatusTransition
	}

	if err := s.applicationRepo.UpdateStatus(application.ID, newStatus, req.Feedback); err != nil {
		return nil, appErrors.InternalError(err)
	}

	application.Status = newStatus
	if req.Feedback != nil {
		application.Feedback = req.Feedback
	}

	s.notifyCandidate(application)

	return application, nil
}

// notifyCandidate отправляет письмо кандидату о смене статуса.
// Ошибка отправки логируется и не ломает запрос.
func (s *ApplicationServiceImpl) notifyCandidate(application *models.Application) {
	if s.emailProvider == nil || application.Candidate == nil || application.Job == nil {
		return
	}

	feedback := ""
	if application.Feedback != nil {
		feedback = *application.Feedback
	}

	err := s.emailProvider.SendApplicationStatusChanged(
		application.Candidate.Email,
		application.Job.Title,
		application.Status,
		feedback,
	)
	if err != nil {
		logger.Warn("Failed to send status notification",
			"application_id", application.ID,
			"error", err,
		)
	}
}
