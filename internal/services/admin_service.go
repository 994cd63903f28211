package services

import (
	"context"
	"encoding/json"
	"time"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

const (
	statisticsCacheKey = "admin:statistics"
	statisticsCacheTTL = time.Minute
)

type AdminService interface {
	GetStatistics(ctx context.Context, actorID string) (*dto.Statistics, error)
	ListUsers(actorID string) ([]models.User, error)
	ListJobs(actorID string) ([]models.Job, error)
	ListApplications(actorID string) ([]models.Application, error)
	UpdateUserRole(targetID, actorID string, role models.UserRole) error
	DeleteUser(targetID, actorID string) error
	DeleteJob(jobID, actorID string) error
}

type AdminServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	cache           cache.Cache // nil = без кэширования
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	c cache.Cache,
) AdminService {
	return &AdminServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		cache:           c,
	}
}

// GetStatistics - чтение агрегатов без побочных эффектов.
// total_jobs считает все вакансии независимо от is_active,
// active_jobs - только активные.
func (s *AdminServiceImpl) GetStatistics(ctx context.Context, actorID string) (*dto.Statistics, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}

	if cached := s.readCachedStatistics(ctx); cached != nil {
		return cached, nil
	}

	stats := &dto.Statistics{}
	var err error

	if stats.TotalUsers, err = s.userRepo.CountAll(); err != nil {
		return nil, appErrors.InternalError(err)
	}
	if stats.TotalEmployers, err = s.userRepo.CountByRole(models.UserRoleEmployer); err != nil {
		return nil, appErrors.InternalError(err)
	}
	if stats.TotalCandidates, err = s.userRepo.CountByRole(models.UserRoleCandidate); err != nil {
		return nil, appErrors.InternalError(err)
	}
	if stats.TotalJobs, err = s.jobRepo.CountAll(); err != nil {
		return nil, appErrors.InternalError(err)
	}
	if stats.ActiveJobs, err = s.jobRepo.CountActive(); err != nil {
		return nil, appErrors.InternalError(err)
	}
	if stats.TotalApplications, err = s.applicationRepo.CountAll(); err != nil {
		return nil, appErrors.InternalError(err)
	}

	s.writeCachedStatistics(ctx, stats)
	return stats, nil
}

func (s *AdminServiceImpl) ListUsers(actorID string) ([]models.User, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return users, nil
}

func (s *AdminServiceImpl) ListJobs(actorID string) ([]models.Job, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return jobs, nil
}

func (s *AdminServiceImpl) ListApplications(actorID string) ([]models.Application, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	applications, err := s.applicationRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return applications, nil
}

func (s *AdminServiceImpl) UpdateUserRole(targetID, actorID string, role models.UserRole) error {
	if err := s.requireAdmin(actorID); err != nil {
		return err
	}
	if targetID == actorID {
		return appErrors.ErrCannotModifySelf
	}
	if err := auth.ValidateRole(role); err != nil {
		return err
	}

	if err := s.userRepo.UpdateRole(targetID, role); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) DeleteUser(targetID, actorID string) error {
	if err := s.requireAdmin(actorID); err != nil {
		return err
	}
	if targetID == actorID {
		return appErrors.ErrCannotModifySelf
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) DeleteJob(jobID, actorID string) error {
	if err := s.requireAdmin(actorID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return appErrors.ErrJobNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) requireAdmin(actorID string) error {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}
	return auth.RequireAdmin(actor)
}

func (s *AdminServiceImpl) readCachedStatistics(ctx context.Context) *dto.Statistics {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, statisticsCacheKey)
	if err != nil {
		if !appErrors.Is(err, cache.ErrCacheMiss) {
			logger.Warn("Failed to read statistics cache", "error", err)
		}
		return nil
	}

	var stats dto.Statistics
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		logger.Warn("Corrupted statistics cache entry", "error", err)
		_ = s.cache.Delete(ctx, statisticsCacheKey)
		return nil
	}
	return &stats
}

func (s *AdminServiceImpl) writeCachedStatistics(ctx context.Context, stats *dto.Statistics) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, statisticsCacheKey, raw, statisticsCacheTTL); err != nil {
		logger.Warn("Failed to write statistics cache", "error", err)
	}
}
