package employee

import (
	"time"

	"github.com/pontoseguro/ponto-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.CPF = validator.NormalizeCPF(r.CPF)

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len([]rune(r.Name)) < 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at least 3 characters long",
		})
	}

	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf must have 11 digits",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	} else if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID       string  `json:"-"`
	Name     string  `json:"name"`
	Password *string `json:"password,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len([]rune(r.Name)) < 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at least 3 characters long",
		})
	}

	// An empty password keeps the current one.
	if r.Password != nil && *r.Password == "" {
		r.Password = nil
	}
	if r.Password != nil && (len(*r.Password) < 6 || len(*r.Password) > 72) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be between 6 and 72 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetActiveRequest struct {
	ID     string `json:"-"`
	Active *bool  `json:"active"`
}

func (r *SetActiveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.Active == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "active",
			Message: "active is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Role != nil && !validator.IsInSlice(*f.Role, RoleValues) {
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

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		CPF:       e.CPF,
		Role:      string(e.Role),
		Active:    e.Active,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}
