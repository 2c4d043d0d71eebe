package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
)

const tokenCleanupInterval = time.Hour

// RevocationList is the in-memory access token blacklist of the JWT service.
type RevocationList interface {
	PurgeRevoked(now time.Time) int
}

type TokenJobs struct {
	refreshRepo auth.RefreshTokenRepository
	revoked     RevocationList
	now         func() time.Time
}

func NewTokenJobs(refreshRepo auth.RefreshTokenRepository, revoked RevocationList) *TokenJobs {
	return &TokenJobs{
		refreshRepo: refreshRepo,
		revoked:     revoked,
		now:         time.Now,
	}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_refresh_tokens", tokenCleanupInterval, j.PurgeExpiredRefreshTokens)
	scheduler.AddJob("purge_revoked_access_tokens", tokenCleanupInterval, j.PurgeRevokedAccessTokens)
}

func (j *TokenJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.refreshRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: expired refresh tokens deleted", "count", deleted)
	}
	return nil
}

func (j *TokenJobs) PurgeRevokedAccessTokens(_ context.Context) error {
	if removed := j.revoked.PurgeRevoked(j.now()); removed > 0 {
		slog.Info("Cron: revoked access tokens purged", "count", removed)
	}
	return nil
}
