package usecases

import (
	"context"

	"faultdesk/internal/domain/user"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	Principal authorization.Principal
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*UserResult, error)
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute reloads the account behind the token so the response reflects
// role or assignment changes made after the token was issued.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*UserResult, error) {
	u, err := uc.userRepo.FindByID(ctx, query.Principal.UserID)
	if err != nil {
		return nil, err
	}

	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is inactive")
	}

	result := toUserResult(u)
	return &result, nil
}
