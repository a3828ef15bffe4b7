package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultdesk/internal/domain/user"
	"faultdesk/internal/shared/authorization"
	apperrors "faultdesk/internal/shared/errors"
)

func TestCreateUserUseCase_Execute_Success(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			if err := u.SetID(5); err != nil {
				return err
			}
			saved = u
			return nil
		},
	}
	useCase := NewCreateUserUseCase(repo, &mockHasher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateUserCommand{
		Principal: adminPrincipal(),
		Username:  "tech2",
		Password:  "long-enough-secret",
		Role:      "technician",
		Command:   "South Command",
		Unit:      "Bravo Unit",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.ID)
	assert.Equal(t, "tech2", result.Username)
	assert.Equal(t, "technician", result.Role)
	assert.True(t, result.IsActive)

	require.NotNil(t, saved)
	assert.Equal(t, "hashed:long-enough-secret", saved.PasswordHash(),
		"plaintext must never reach the repository")
}

func TestCreateUserUseCase_Execute_NonAdminForbidden(t *testing.T) {
	useCase := NewCreateUserUseCase(&mockUserRepository{}, &mockHasher{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateUserCommand{
		Principal: authorization.Principal{Username: "tech1", Role: authorization.RoleTechnician},
		Username:  "tech2",
		Password:  "long-enough-secret",
		Role:      "viewer",
		Command:   "Cmd",
		Unit:      "Unit",
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateUserUseCase_Execute_ValidationErrors(t *testing.T) {
	useCase := NewCreateUserUseCase(&mockUserRepository{}, &mockHasher{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  CreateUserCommand
	}{
		{"short password", CreateUserCommand{Principal: adminPrincipal(), Username: "tech2", Password: "short", Role: "viewer", Command: "C", Unit: "U"}},
		{"invalid role", CreateUserCommand{Principal: adminPrincipal(), Username: "tech2", Password: "long-enough-secret", Role: "owner", Command: "C", Unit: "U"}},
		{"username too short", CreateUserCommand{Principal: adminPrincipal(), Username: "ab", Password: "long-enough-secret", Role: "viewer", Command: "C", Unit: "U"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := useCase.Execute(context.Background(), tc.cmd)
			require.Error(t, err)
			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestCreateUserUseCase_Execute_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return apperrors.NewConflictError("username already exists")
		},
	}
	useCase := NewCreateUserUseCase(repo, &mockHasher{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateUserCommand{
		Principal: adminPrincipal(),
		Username:  "tech2",
		Password:  "long-enough-secret",
		Role:      "technician",
		Command:   "C",
		Unit:      "U",
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}
