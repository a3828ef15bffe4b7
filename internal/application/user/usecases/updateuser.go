package usecases

import (
	"context"

	"faultdesk/internal/domain/user"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	Principal authorization.Principal
	UserID    uint
	Role      *string
	Command   *string
	Unit      *string
	Password  *string
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*UserResult, error)
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserResult, error) {
	if !cmd.Principal.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can update users")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Role != nil {
		role, ok := authorization.ParseUserRole(*cmd.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role").
				WithField("role", "must be viewer, technician or admin")
		}

		// Demoting the last active admin would lock everyone out of user
		// management.
		if u.Role().IsAdmin() && !role.IsAdmin() && u.IsActive() {
			admins, err := uc.userRepo.CountActiveAdmins(ctx)
			if err != nil {
				return nil, err
			}
			if admins <= 1 {
				return nil, errors.NewConflictError("cannot demote the last active administrator")
			}
		}

		if err := u.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Command != nil || cmd.Unit != nil {
		command := u.Command()
		unit := u.Unit()
		if cmd.Command != nil {
			command = *cmd.Command
		}
		if cmd.Unit != nil {
			unit = *cmd.Unit
		}
		if err := u.ChangeAssignment(command, unit); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < passwordMinLen {
			return nil, errors.NewValidationError("password is too short").
				WithField("password", "must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update user")
		}
		if err := u.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated",
		"user_id", u.ID(), "username", u.Username(), "updated_by", cmd.Principal.Username)

	result := toUserResult(u)
	return &result, nil
}
