package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
)

type RefreshTokenRepository struct {
	mock.Mock
}

func (m *RefreshTokenRepository) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, session auth.SessionTrackingRequest) error {
	args := m.Called(ctx, userID, token, expiresAt, session)
	return args.Error(0)
}

func (m *RefreshTokenRepository) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *RefreshTokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
