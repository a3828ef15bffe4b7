package usecases

import (
	"context"
	"time"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Principal   authorization.Principal
	Status      string
	Priority    string
	Number      *int
	IsRecurring *bool
	Command     string
	Unit        string
	Search      string
	DateFrom    *time.Time
	DateTo      *time.Time
	Page        int
	Limit       int
	SortBy      string
	SortOrder   string
}

type ListTicketsResult struct {
	Tickets []TicketResult
	Total   int64
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		uc.logger.Errorw("invalid list tickets query", "error", err)
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: toTicketResults(tickets),
		Total:   total,
	}, nil
}

// buildFilter combines the caller's explicit filters with the visibility
// scope. Filters are additive; nothing in the query can widen the scope.
func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	filter := ticket.Filter{
		Scope:       ticket.ResolveScope(query.Principal),
		Number:      query.Number,
		IsRecurring: query.IsRecurring,
		Command:     query.Command,
		Unit:        query.Unit,
		Search:      query.Search,
		DateFrom:    query.DateFrom,
		DateTo:      query.DateTo,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	if query.DateFrom != nil && query.DateTo != nil && query.DateTo.Before(*query.DateFrom) {
		return ticket.Filter{}, errors.NewValidationError("date range end precedes start")
	}

	filter.Page = query.Page
	filter.Limit = query.Limit
	filter.SortBy = query.SortBy
	filter.SortOrder = query.SortOrder

	return filter, nil
}
