package usecases

import (
	"context"

	"faultdesk/internal/domain/user"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Principal authorization.Principal
	Role      string
	Command   string
	IsActive  *bool
	Page      int
	Limit     int
}

type ListUsersResult struct {
	Users []UserResult
	Total int64
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if !query.Principal.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can list users")
	}

	filter := user.Filter{IsActive: query.IsActive}
	if query.Role != "" {
		if _, ok := authorization.ParseUserRole(query.Role); !ok {
			return nil, errors.NewValidationError("invalid role filter")
		}
		filter.Role = &query.Role
	}
	if query.Command != "" {
		filter.Command = &query.Command
	}
	filter.Page = query.Page
	filter.Limit = query.Limit

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{
		Users: toUserResults(users),
		Total: total,
	}, nil
}
