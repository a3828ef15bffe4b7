package usecases

import (
	"context"

	"faultdesk/internal/domain/ticket"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/logger"
)

type GetTicketStatsQuery struct {
	Principal authorization.Principal
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, query GetTicketStatsQuery) (*ticket.Stats, error)
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute computes the dashboard counters over the caller's visible set.
// Per-role scoping means two users can legitimately see different numbers.
func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, query GetTicketStatsQuery) (*ticket.Stats, error) {
	scope := ticket.ResolveScope(query.Principal)

	stats, err := uc.ticketRepo.Stats(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to compute ticket stats", "error", err)
		return nil, err
	}

	return stats, nil
}
