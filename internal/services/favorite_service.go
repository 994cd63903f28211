package services

import (
	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type FavoriteService interface {
	Toggle(candidateID, jobID string) (*dto.ToggleFavoriteResponse, error)
	List(candidateID string) ([]models.Favorite, error)
	Check(candidateID, jobID string) (*dto.CheckFavoriteResponse, error)
}

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
	jobRepo      repositories.JobRepository
	userRepo     repositories.UserRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		jobRepo:      jobRepo,
		userRepo:     userRepo,
	}
}

// Toggle переключает избранное: существующая запись удаляется, отсутствующая
// создается. Каждый вызов меняет состояние; пара вызовов возвращает исходное.
func (s *FavoriteServiceImpl) Toggle(candidateID, jobID string) (*dto.ToggleFavoriteResponse, error) {
	candidate, err := s.findCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanUseFavorites(candidate); err != nil {
		return nil, err
	}

	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	exists, err := s.favoriteRepo.Exists(candidateID, jobID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	if exists {
		if err := s.favoriteRepo.DeleteByPair(candidateID, jobID); err != nil {
			return nil, appErrors.InternalError(err)
		}
		return &dto.ToggleFavoriteResponse{Favorited: false}, nil
	}

	err = s.favoriteRepo.Create(&models.Favorite{
		CandidateID: candidateID,
		JobID:       jobID,
	})
	if err != nil {
		// Гонка двух одновременных toggle: запись уже появилась.
		if appErrors.Is(err, repositories.ErrDuplicateFavorite) {
			return &dto.ToggleFavoriteResponse{Favorited: true}, nil
		}
		return nil, appErrors.InternalError(err)
	}

	return &dto.ToggleFavoriteResponse{Favorited: true}, nil
}

func (s *FavoriteServiceImpl) List(candidateID string) ([]models.Favorite, error) {
	candidate, err := s.findCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanUseFavorites(candidate); err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return favorites, nil
}

func (s *FavoriteServiceImpl) Check(candidateID, jobID string) (*dto.CheckFavoriteResponse, error) {
	candidate, err := s.findCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanUseFavorites(candidate); err != nil {
		return nil, err
	}

	exists, err := s.favoriteRepo.Exists(candidateID, jobID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return &dto.CheckFavoriteResponse{IsFavorite: exists}, nil
}

func (s *FavoriteServiceImpl) findCandidate(candidateID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(candidateID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}
