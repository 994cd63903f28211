package workers

import (
	"testing"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestCleanupDeletesOnlyExpiredTokens(t *testing.T) {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	users := repositories.NewUserRepository(db)
	tokens := repositories.NewRefreshTokenRepository(db)

	user := &models.User{Name: "U", Email: "u@example.com", PasswordHash: "x", Role: models.UserRoleCandidate}
	require.NoError(t, users.Create(user))

	expired := &models.RefreshToken{UserID: user.ID, Token: "expired", ExpiresAt: time.Now().Add(-time.Hour)}
	valid := &models.RefreshToken{UserID: user.ID, Token: "valid", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, tokens.Create(expired))
	require.NoError(t, tokens.Create(valid))

	w := NewTokenCleanupWorker(tokens, time.Hour)
	w.cleanup()

	_, err = tokens.FindByToken("expired")
	assert.ErrorIs(t, err, repositories.ErrRefreshTokenNotFound)

	_, err = tokens.FindByToken("valid")
	assert.NoError(t, err)
}
