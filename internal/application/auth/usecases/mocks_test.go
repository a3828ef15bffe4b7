package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"faultdesk/internal/domain/user"
	infraAuth "faultdesk/internal/infrastructure/auth"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc              func(ctx context.Context, u *user.User) error
	UpdateFunc            func(ctx context.Context, u *user.User) error
	FindByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ListFunc              func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
	CountActiveAdminsFunc func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) CountActiveAdmins(ctx context.Context) (int64, error) {
	if m.CountActiveAdminsFunc != nil {
		return m.CountActiveAdminsFunc(ctx)
	}
	return 1, nil
}

type mockPasswordVerifier struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordVerifier) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(p authorization.Principal) (*infraAuth.IssuedToken, error)
}

func (m *mockTokenIssuer) Generate(p authorization.Principal) (*infraAuth.IssuedToken, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(p)
	}
	return &infraAuth.IssuedToken{Token: "signed-token", ExpiresIn: 28800}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func activeUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser("tech1", "$2a$12$storedhash", role, "North Command", "Alpha Unit")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}
