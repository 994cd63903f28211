package repositories

import (
	"errors"
	"strings"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter - фильтры публичного списка вакансий
type JobFilter struct {
	Search   string // подстрока в title или company, без учета регистра
	Type     models.JobType
	Category string
	Location string
}

// JobWithCount - проекция вакансии со счетчиком заявок (список работодателя)
type JobWithCount struct {
	models.Job
	ApplicationsCount int64 `json:"applications_count"`
}

type JobRepository interface {
	FindActive(filter JobFilter) ([]models.Job, error)
	FindByID(id string) (*models.Job, error)
	FindByEmployer(employerID string) ([]JobWithCount, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
	Delete(jobID string) error

	// Admin operations
	FindAll() ([]models.Job, error)
	CountAll() (int64, error)
	CountActive() (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindActive(filter JobFilter) ([]models.Job, error) {
	query := r.db.Model(&models.Job{}).Where("is_active = ?", true)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ?", pattern, pattern)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Employer").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByEmployer(employerID string) ([]JobWithCount, error) {
	var jobs []JobWithCount
	err := r.db.Model(&models.Job{}).
		Select("jobs.*, COUNT(applications.id) AS applications_count").
		Joins("LEFT JOIN applications ON applications.job_id = jobs.id").
		Where("jobs.employer_id = ?", employerID).
		Group("jobs.id").
		Order("jobs.created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":                job.Title,
		"description":          job.Description,
		"company":              job.Company,
		"location":             job.Location,
		"salary":               job.Salary,
		"type":                 job.Type,
		"category":             job.Category,
		"application_deadline": job.ApplicationDeadline,
		"is_active":            job.IsActive,
		"updated_at":           time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete удаляет вакансию каскадно с ее заявками и избранным в транзакции.
func (r *JobRepositoryImpl) Delete(jobID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", jobID).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Employer").Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
