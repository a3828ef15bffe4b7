package usecases

import (
	"context"

	"faultdesk/internal/domain/user"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

const passwordMinLen = 8

type CreateUserCommand struct {
	Principal authorization.Principal
	Username  string
	Password  string
	Role      string
	Command   string
	Unit      string
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*UserResult, error)
}

// PasswordHasher derives a storage hash from a plaintext password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*UserResult, error) {
	if !cmd.Principal.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can create users")
	}

	if len(cmd.Password) < passwordMinLen {
		return nil, errors.NewValidationError("password is too short").
			WithField("password", "must be at least 8 characters")
	}

	role, ok := authorization.ParseUserRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role").
			WithField("role", "must be viewer, technician or admin")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	u, err := user.NewUser(cmd.Username, hash, role, cmd.Command, cmd.Unit)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created",
		"user_id", u.ID(), "username", u.Username(), "role", u.Role(), "created_by", cmd.Principal.Username)

	result := toUserResult(u)
	return &result, nil
}
