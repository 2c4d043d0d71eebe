// Command seed creates the first admin and employee accounts.
//
// Accounts are read from SEED_ADMIN_CPF, SEED_ADMIN_NAME, SEED_ADMIN_PASSWORD
// and the matching SEED_EMPLOYEE_* variables. A CPF that already exists is skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/pontoseguro/ponto-backend-go/internal/config"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/database"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/validator"
	"github.com/pontoseguro/ponto-backend-go/internal/repository/postgresql"
	"github.com/pontoseguro/ponto-backend-go/migrations"
)

type account struct {
	Name     string
	CPF      string
	Password string
	Role     employee.Role
}

func accountFromEnv(prefix string, role employee.Role, defaultName string) (account, bool) {
	cpf := os.Getenv(prefix + "_CPF")
	if cpf == "" {
		return account{}, false
	}
	name := os.Getenv(prefix + "_NAME")
	if name == "" {
		name = defaultName
	}
	return account{
		Name:     name,
		CPF:      cpf,
		Password: os.Getenv(prefix + "_PASSWORD"),
		Role:     role,
	}, true
}

// seedAccount creates acc unless its CPF is taken. It reports whether a row was created.
func seedAccount(ctx context.Context, repo employee.EmployeeRepository, acc account, cost int) (bool, error) {
	acc.CPF = validator.NormalizeCPF(acc.CPF)
	if !validator.IsValidCPF(acc.CPF) {
		return false, fmt.Errorf("%s: cpf must have 11 digits", acc.Role)
	}
	if len(acc.Password) < 6 {
		return false, fmt.Errorf("%s: password must be at least 6 characters", acc.Role)
	}

	exists, err := repo.ExistsByCPF(ctx, acc.CPF)
	if err != nil {
		return false, fmt.Errorf("%s: check cpf: %w", acc.Role, err)
	}
	if exists {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), cost)
	if err != nil {
		return false, fmt.Errorf("%s: hash password: %w", acc.Role, err)
	}
	hashStr := string(hash)

	_, err = repo.Create(ctx, employee.Employee{
		Name:         acc.Name,
		CPF:          acc.CPF,
		Role:         acc.Role,
		Active:       true,
		PasswordHash: &hashStr,
	})
	if err != nil {
		return false, fmt.Errorf("%s: create: %w", acc.Role, err)
	}
	return true, nil
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := migrations.Apply(ctx, db); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	var accounts []account
	if acc, ok := accountFromEnv("SEED_ADMIN", employee.RoleAdmin, "Administrador"); ok {
		accounts = append(accounts, acc)
	}
	if acc, ok := accountFromEnv("SEED_EMPLOYEE", employee.RoleEmployee, "Funcionário"); ok {
		accounts = append(accounts, acc)
	}
	if len(accounts) == 0 {
		return errors.New("nothing to seed: set SEED_ADMIN_CPF and/or SEED_EMPLOYEE_CPF")
	}

	repo := postgresql.NewEmployeeRepository(db)
	for _, acc := range accounts {
		created, err := seedAccount(ctx, repo, acc, bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if created {
			slog.Info("Account created", "role", acc.Role, "name", acc.Name)
		} else {
			slog.Info("Account already exists, skipped", "role", acc.Role)
		}
	}
	return nil
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("Seed failed", "error", err)
		os.Exit(1)
	}
}
