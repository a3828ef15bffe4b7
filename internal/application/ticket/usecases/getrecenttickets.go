package usecases

import (
	"context"

	"faultdesk/internal/domain/ticket"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/constants"
	"faultdesk/internal/shared/logger"
)

type GetRecentTicketsQuery struct {
	Principal authorization.Principal
	Limit     int
}

type GetRecentTicketsExecutor interface {
	Execute(ctx context.Context, query GetRecentTicketsQuery) ([]TicketResult, error)
}

type GetRecentTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetRecentTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetRecentTicketsUseCase {
	return &GetRecentTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetRecentTicketsUseCase) Execute(ctx context.Context, query GetRecentTicketsQuery) ([]TicketResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = constants.DefaultRecentLimit
	}
	if limit > constants.MaxRecentLimit {
		limit = constants.MaxRecentLimit
	}

	scope := ticket.ResolveScope(query.Principal)

	tickets, err := uc.ticketRepo.Recent(ctx, scope, limit)
	if err != nil {
		uc.logger.Errorw("failed to list recent tickets", "error", err)
		return nil, err
	}

	return toTicketResults(tickets), nil
}
