package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("favorite already exists for this job and candidate")
)

type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	FindByPair(candidateID, jobID string) (*models.Favorite, error)
	DeleteByPair(candidateID, jobID string) error
	FindByCandidate(candidateID string) ([]models.Favorite, error)
	Exists(candidateID, jobID string) (bool, error)
}

type FavoriteRepositoryImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &FavoriteRepositoryImpl{db: db}
}

// Create полагается на уникальный индекс (candidate_id, job_id).
func (r *FavoriteRepositoryImpl) Create(favorite *models.Favorite) error {
	err := r.db.Create(favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateFavorite
	}
	return err
}

func (r *FavoriteRepositoryImpl) FindByPair(candidateID, jobID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.First(&favorite, "candidate_id = ? AND job_id = ?", candidateID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepositoryImpl) DeleteByPair(candidateID, jobID string) error {
	result := r.db.Where("candidate_id = ? AND job_id = ?", candidateID, jobID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) FindByCandidate(candidateID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *FavoriteRepositoryImpl) Exists(candidateID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		Count(&count).Error
	return count > 0, err
}
