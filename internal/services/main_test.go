package services

import (
	"testing"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.JWT.RefreshTTLDay = 30
	config.AppConfig = cfg

	logger.Init("test")

	m.Run()
}

// setupTestDB поднимает in-memory sqlite со схемой приложения.
// TranslateError включен, как и в production-конфигурации gorm:
// нарушения уникальности приходят как gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Именованная in-memory база: cache=shared дает всем соединениям пула
	// одну и ту же БД, уникальное имя изолирует тесты друг от друга.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

type testRepos struct {
	users         repositories.UserRepository
	refreshTokens repositories.RefreshTokenRepository
	jobs          repositories.JobRepository
	applications  repositories.ApplicationRepository
	favorites     repositories.FavoriteRepository
}

func newTestRepos(db *gorm.DB) *testRepos {
	return &testRepos{
		users:         repositories.NewUserRepository(db),
		refreshTokens: repositories.NewRefreshTokenRepository(db),
		jobs:          repositories.NewJobRepository(db),
		applications:  repositories.NewApplicationRepository(db),
		favorites:     repositories.NewFavoriteRepository(db),
	}
}

func createTestUser(t *testing.T, repos *testRepos, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test " + string(role),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, repos.users.Create(user))
	return user
}

func createTestJob(t *testing.T, repos *testRepos, employerID string, mutate ...func(*models.Job)) *models.Job {
	t.Helper()

	job := &models.Job{
		EmployerID:  employerID,
		Title:       "Backend Developer",
		Description: "Build and maintain APIs",
		Company:     "Acme",
		Location:    "Almaty",
		Type:        models.JobTypeFullTime,
		Category:    "IT",
		IsActive:    true,
	}
	for _, fn := range mutate {
		fn(job)
	}
	require.NoError(t, repos.jobs.Create(job))
	return job
}

func dateDaysFromNow(days int) *datatypes.Date {
	d := datatypes.Date(time.Now().AddDate(0, 0, days))
	return &d
}
