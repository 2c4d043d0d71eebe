package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCPFExists        = errors.New("CPF already registered")
	ErrDuplicateRecord  = errors.New("more than one employee registered with this CPF")
	ErrInvalidRole      = errors.New("role must be admin or employee")
)
