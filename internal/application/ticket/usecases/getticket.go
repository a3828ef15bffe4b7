package usecases

import (
	"context"

	"faultdesk/internal/domain/ticket"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Principal authorization.Principal
	TicketID  uint
	// IncludeDeleted widens the lookup to soft-deleted tickets. Honored for
	// admins only.
	IncludeDeleted bool
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketResult, error)
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketResult, error) {
	scope := ticket.ResolveScope(query.Principal)
	if query.IncludeDeleted {
		scope = scope.WithDeleted()
	}

	var t *ticket.Ticket
	var err error
	if scope.IncludeDeleted() {
		t, err = uc.ticketRepo.FindByIDIncludingDeleted(ctx, query.TicketID)
	} else {
		t, err = uc.ticketRepo.FindByID(ctx, query.TicketID)
	}
	if err != nil {
		return nil, err
	}

	// Out-of-scope reads get the same answer as a missing row, so a caller
	// cannot learn whether tickets exist in other commands.
	if !scope.Allows(t) {
		uc.logger.Warnw("ticket access outside scope",
			"ticket_id", query.TicketID, "username", query.Principal.Username)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	result := toTicketResult(t)
	return &result, nil
}
