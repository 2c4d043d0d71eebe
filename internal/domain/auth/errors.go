package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid CPF or password")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrWrongRole           = errors.New("account does not have the requested role")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrForbidden           = errors.New("insufficient permissions")
)
