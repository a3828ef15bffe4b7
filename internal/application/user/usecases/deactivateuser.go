package usecases

import (
	"context"

	"faultdesk/internal/domain/user"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type DeactivateUserCommand struct {
	Principal authorization.Principal
	UserID    uint
}

type DeactivateUserExecutor interface {
	Execute(ctx context.Context, cmd DeactivateUserCommand) error
}

type DeactivateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeactivateUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeactivateUserUseCase) Execute(ctx context.Context, cmd DeactivateUserCommand) error {
	if !cmd.Principal.Role.IsAdmin() {
		return errors.NewForbiddenError("only administrators can deactivate users")
	}

	if cmd.Principal.UserID == cmd.UserID {
		return errors.NewConflictError("cannot deactivate your own account")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if u.Role().IsAdmin() && u.IsActive() {
		admins, err := uc.userRepo.CountActiveAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return errors.NewConflictError("cannot deactivate the last active administrator")
		}
	}

	if err := u.Deactivate(); err != nil {
		return errors.NewConflictError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to deactivate user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deactivated",
		"user_id", u.ID(), "username", u.Username(), "deactivated_by", cmd.Principal.Username)

	return nil
}
