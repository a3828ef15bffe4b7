package usecases

import (
	"context"

	"faultdesk/internal/domain/ticket"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/constants"
	"faultdesk/internal/shared/logger"
)

type GetDashboardSummaryQuery struct {
	Principal authorization.Principal
}

type DashboardSummaryResult struct {
	Stats  *ticket.Stats  `json:"stats"`
	Recent []TicketResult `json:"recentTickets"`
}

type GetDashboardSummaryExecutor interface {
	Execute(ctx context.Context, query GetDashboardSummaryQuery) (*DashboardSummaryResult, error)
}

type GetDashboardSummaryUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetDashboardSummaryUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetDashboardSummaryUseCase {
	return &GetDashboardSummaryUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute combines the scoped counters and the newest tickets into one
// payload so the dashboard loads with a single request.
func (uc *GetDashboardSummaryUseCase) Execute(ctx context.Context, query GetDashboardSummaryQuery) (*DashboardSummaryResult, error) {
	scope := ticket.ResolveScope(query.Principal)

	stats, err := uc.ticketRepo.Stats(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to compute dashboard stats", "error", err)
		return nil, err
	}

	recent, err := uc.ticketRepo.Recent(ctx, scope, constants.DefaultRecentLimit)
	if err != nil {
		uc.logger.Errorw("failed to load recent tickets for dashboard", "error", err)
		return nil, err
	}

	return &DashboardSummaryResult{
		Stats:  stats,
		Recent: toTicketResults(recent),
	}, nil
}
