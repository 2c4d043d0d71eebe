package auth

import (
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.CPF = validator.NormalizeCPF(r.CPF)

	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf must have 11 digits",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}

	if !validator.IsInSlice(r.Role, employee.RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type TokenResponse struct {
	AccessToken           string     `json:"access_token"`
	AccessTokenExpiresIn  int64      `json:"access_token_expires_in"`
	RefreshToken          string     `json:"refresh_token"`
	RefreshTokenExpiresIn int64      `json:"refresh_token_expires_in"`
	User                  MeResponse `json:"user"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

type MeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}
