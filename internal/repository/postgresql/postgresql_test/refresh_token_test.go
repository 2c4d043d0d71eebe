package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/repository/postgresql"
)

func TestRefreshTokenRepository_Lifecycle(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewRefreshTokenRepository(db.DB)
	emp := createTestEmployee(t, ctx, "Mara", employee.RoleEmployee)

	session := auth.SessionTrackingRequest{UserAgent: "test", IPAddress: "127.0.0.1"}
	err := repo.CreateRefreshToken(ctx, emp.ID, "token-a", time.Now().Add(time.Hour).Unix(), session)
	require.NoError(t, err)

	userID, revoked, err := repo.IsRefreshTokenRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, userID)
	assert.False(t, revoked)

	require.NoError(t, repo.RevokeRefreshToken(ctx, "token-a"))

	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRefreshTokenRepository_UnknownTokenIsRevoked(t *testing.T) {
	db := requireDB(t)
	repo := postgresql.NewRefreshTokenRepository(db.DB)

	userID, revoked, err := repo.IsRefreshTokenRevoked(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.Empty(t, userID)
	assert.True(t, revoked)
}

func TestRefreshTokenRepository_DeleteExpired(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgresql.NewRefreshTokenRepository(db.DB)
	emp := createTestEmployee(t, ctx, "Nina", employee.RoleEmployee)

	session := auth.SessionTrackingRequest{}
	require.NoError(t, repo.CreateRefreshToken(ctx, emp.ID, "old", time.Now().Add(-time.Hour).Unix(), session))
	require.NoError(t, repo.CreateRefreshToken(ctx, emp.ID, "fresh", time.Now().Add(time.Hour).Unix(), session))

	_, revoked, err := repo.IsRefreshTokenRevoked(ctx, "old")
	require.NoError(t, err)
	assert.True(t, revoked)

	deleted, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "fresh")
	require.NoError(t, err)
	assert.False(t, revoked)
}
