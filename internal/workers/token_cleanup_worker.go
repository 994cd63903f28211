package workers

import (
	"context"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
)

// TokenCleanupWorker периодически удаляет истекшие refresh-токены
type TokenCleanupWorker struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	interval         time.Duration
}

func NewTokenCleanupWorker(refreshTokenRepo repositories.RefreshTokenRepository, interval time.Duration) *TokenCleanupWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &TokenCleanupWorker{
		refreshTokenRepo: refreshTokenRepo,
		interval:         interval,
	}
}

// Run блокируется до отмены контекста
func (w *TokenCleanupWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.cleanup()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

func (w *TokenCleanupWorker) cleanup() {
	deleted, err := w.refreshTokenRepo.DeleteExpired()
	if err != nil {
		logger.Warn("Failed to delete expired refresh tokens", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("Deleted expired refresh tokens", "count", deleted)
	}
}
