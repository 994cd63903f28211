package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and candidate")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByCandidate(candidateID string) ([]models.Application, error)
	FindByEmployer(employerID string) ([]models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus, feedback *string) error

	// Admin operations
	FindAll() ([]models.Application, error)
	CountAll() (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create полагается на уникальный индекс (job_id, candidate_id):
// нарушение ограничения переводится в ErrDuplicateApplication вместо
// предварительной проверки существования (исключает гонку check-then-act).
func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("Candidate").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByCandidate(candidateID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByEmployer(employerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Candidate").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus, feedback *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if feedback != nil {
		updates["feedback"] = *feedback
	}

	result := r.db.Model(&models.Application{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindAll() ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Candidate").
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Count(&count).Error
	return count, err
}
