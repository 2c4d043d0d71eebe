package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
	"github.com/pontoseguro/ponto-backend-go/internal/domain/employee"
	"github.com/pontoseguro/ponto-backend-go/internal/mocks"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/jwt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
	testCPF        = "00922256403"
	testPassword   = "password123"
)

type authFixture struct {
	svc       auth.AuthService
	employees *mocks.EmployeeRepository
	tokens    *mocks.RefreshTokenRepository
	jwt       jwt.Service
}

func newAuthFixture() authFixture {
	employees := &mocks.EmployeeRepository{}
	tokens := &mocks.RefreshTokenRepository{}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	return authFixture{
		svc:       NewAuthService(&mocks.Transactor{}, employees, tokens, jwtService),
		employees: employees,
		tokens:    tokens,
		jwt:       jwtService,
	}
}

func testEmployee(t *testing.T, role employee.Role, active bool) employee.Employee {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)
	return employee.Employee{
		ID:           "0190a0e4-5d1c-7b7e-8a3e-000000000001",
		Name:         "Maria Souza",
		CPF:          testCPF,
		Role:         role,
		Active:       active,
		PasswordHash: &hashed,
	}
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	emp := testEmployee(t, employee.RoleEmployee, true)

	f.employees.On("GetByCPF", ctx, testCPF).Return(emp, nil)
	f.tokens.On("CreateRefreshToken", ctx, emp.ID, mock.AnythingOfType("string"), mock.AnythingOfType("int64"), auth.SessionTrackingRequest{UserAgent: "test"}).Return(nil)

	resp, err := f.svc.Login(ctx, auth.LoginRequest{
		CPF:      "009.222.564-03",
		Password: testPassword,
		Role:     "employee",
	}, auth.SessionTrackingRequest{UserAgent: "test"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, emp.ID, resp.User.ID)
	assert.Equal(t, "employee", resp.User.Role)
	f.employees.AssertExpectations(t)
	f.tokens.AssertExpectations(t)
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		employee *employee.Employee
		lookup   error
		password string
		role     string
		want     error
	}{
		{
			name:     "unknown cpf",
			lookup:   employee.ErrEmployeeNotFound,
			password: testPassword,
			role:     "employee",
			want:     auth.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			employee: func() *employee.Employee { e := testEmployee(t, employee.RoleEmployee, true); return &e }(),
			password: "wrong-password",
			role:     "employee",
			want:     auth.ErrInvalidCredentials,
		},
		{
			name:     "inactive account",
			employee: func() *employee.Employee { e := testEmployee(t, employee.RoleEmployee, false); return &e }(),
			password: testPassword,
			role:     "employee",
			want:     auth.ErrAccountInactive,
		},
		{
			name:     "employee asking for admin",
			employee: func() *employee.Employee { e := testEmployee(t, employee.RoleEmployee, true); return &e }(),
			password: testPassword,
			role:     "admin",
			want:     auth.ErrWrongRole,
		},
		{
			name:     "duplicate cpf rows",
			lookup:   employee.ErrDuplicateRecord,
			password: testPassword,
			role:     "employee",
			want:     employee.ErrDuplicateRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			if tt.employee != nil {
				f.employees.On("GetByCPF", ctx, testCPF).Return(*tt.employee, nil)
			} else {
				f.employees.On("GetByCPF", ctx, testCPF).Return(employee.Employee{}, tt.lookup)
			}

			_, err := f.svc.Login(ctx, auth.LoginRequest{CPF: testCPF, Password: tt.password, Role: tt.role}, auth.SessionTrackingRequest{})
			assert.ErrorIs(t, err, tt.want)
			f.tokens.AssertNotCalled(t, "CreateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestLogin_ValidationError(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Login(context.Background(), auth.LoginRequest{CPF: "123", Role: "boss"}, auth.SessionTrackingRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpf")
	assert.Contains(t, err.Error(), "role")
	f.employees.AssertNotCalled(t, "GetByCPF", mock.Anything, mock.Anything)
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	emp := testEmployee(t, employee.RoleAdmin, true)

	refresh, _, err := f.jwt.GenerateRefreshToken(emp.ID)
	require.NoError(t, err)

	f.tokens.On("IsRefreshTokenRevoked", ctx, refresh).Return(emp.ID, false, nil)
	f.employees.On("GetByID", ctx, emp.ID).Return(emp, nil)

	resp, err := f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refresh})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshToken_Revoked(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	refresh, _, err := f.jwt.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	f.tokens.On("IsRefreshTokenRevoked", ctx, refresh).Return("user-1", true, nil)

	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refresh})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	f := newAuthFixture()

	access, _, err := f.jwt.GenerateAccessToken("user-1", "Maria", employee.RoleEmployee)
	require.NoError(t, err)

	_, err = f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: access})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_InactiveAccount(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	emp := testEmployee(t, employee.RoleEmployee, false)

	refresh, _, err := f.jwt.GenerateRefreshToken(emp.ID)
	require.NoError(t, err)
	f.tokens.On("IsRefreshTokenRevoked", ctx, refresh).Return(emp.ID, false, nil)
	f.employees.On("GetByID", ctx, emp.ID).Return(emp, nil)

	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refresh})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	f.tokens.On("IsRefreshTokenRevoked", ctx, "refresh").Return("user-1", false, nil)
	f.tokens.On("RevokeRefreshToken", ctx, "refresh").Return(nil)

	require.NoError(t, f.svc.Logout(ctx, "refresh"))
	f.tokens.AssertExpectations(t)
}

func TestLogout_AlreadyRevoked(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	f.tokens.On("IsRefreshTokenRevoked", ctx, "refresh").Return("user-1", true, nil)

	require.NoError(t, f.svc.Logout(ctx, "refresh"))
	f.tokens.AssertNotCalled(t, "RevokeRefreshToken", mock.Anything, mock.Anything)
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	emp := testEmployee(t, employee.RoleAdmin, true)
	f.employees.On("GetByID", ctx, emp.ID).Return(emp, nil)

	me, err := f.svc.Me(ctx, auth.Principal{UserID: emp.ID, Role: employee.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, auth.MeResponse{ID: emp.ID, Name: emp.Name, Role: "admin", Active: true}, me)
}
