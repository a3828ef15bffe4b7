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

func strPtr(s string) *string { return &s }

func TestUpdateUserUseCase_Execute_RoleChange(t *testing.T) {
	account := storedUser(t, 5, "tech2", authorization.RoleTechnician)
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return account, nil },
	}
	useCase := NewUpdateUserUseCase(repo, &mockHasher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UpdateUserCommand{
		Principal: adminPrincipal(),
		UserID:    5,
		Role:      strPtr("admin"),
	})

	require.NoError(t, err)
	assert.Equal(t, "admin", result.Role)
}

func TestUpdateUserUseCase_Execute_LastAdminDemoteGuard(t *testing.T) {
	lastAdmin := storedUser(t, 5, "admin2", authorization.RoleAdmin)
	repo := &mockUserRepository{
		FindByIDFunc:          func(ctx context.Context, id uint) (*user.User, error) { return lastAdmin, nil },
		CountActiveAdminsFunc: func(ctx context.Context) (int64, error) { return 1, nil },
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			t.Fatal("update must not be reached")
			return nil
		},
	}
	useCase := NewUpdateUserUseCase(repo, &mockHasher{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UpdateUserCommand{
		Principal: adminPrincipal(),
		UserID:    5,
		Role:      strPtr("technician"),
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestUpdateUserUseCase_Execute_DemoteAllowedWithAnotherAdmin(t *testing.T) {
	admin := storedUser(t, 5, "admin2", authorization.RoleAdmin)
	repo := &mockUserRepository{
		FindByIDFunc:          func(ctx context.Context, id uint) (*user.User, error) { return admin, nil },
		CountActiveAdminsFunc: func(ctx context.Context) (int64, error) { return 2, nil },
	}
	useCase := NewUpdateUserUseCase(repo, &mockHasher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UpdateUserCommand{
		Principal: adminPrincipal(),
		UserID:    5,
		Role:      strPtr("technician"),
	})

	require.NoError(t, err)
	assert.Equal(t, "technician", result.Role)
}

func TestUpdateUserUseCase_Execute_AssignmentMerge(t *testing.T) {
	account := storedUser(t, 5, "tech2", authorization.RoleTechnician)
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return account, nil },
	}
	useCase := NewUpdateUserUseCase(repo, &mockHasher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UpdateUserCommand{
		Principal: adminPrincipal(),
		UserID:    5,
		Command:   strPtr("South Command"),
	})

	require.NoError(t, err)
	assert.Equal(t, "South Command", result.Command)
	assert.Equal(t, "Alpha Unit", result.Unit, "unit left untouched keeps its value")
}

func TestUpdateUserUseCase_Execute_PasswordChange(t *testing.T) {
	account := storedUser(t, 5, "tech2", authorization.RoleTechnician)
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return account, nil },
	}
	useCase := NewUpdateUserUseCase(repo, &mockHasher{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UpdateUserCommand{
		Principal: adminPrincipal(),
		UserID:    5,
		Password:  strPtr("new-long-password"),
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:new-long-password", account.PasswordHash())

	_, err = useCase.Execute(context.Background(), UpdateUserCommand{
		Principal: adminPrincipal(),
		UserID:    5,
		Password:  strPtr("short"),
	})
	assert.Error(t, err)
}

func TestUpdateUserUseCase_Execute_NonAdminForbidden(t *testing.T) {
	useCase := NewUpdateUserUseCase(&mockUserRepository{}, &mockHasher{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UpdateUserCommand{
		Principal: authorization.Principal{Username: "tech1", Role: authorization.RoleTechnician},
		UserID:    5,
		Role:      strPtr("admin"),
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}
