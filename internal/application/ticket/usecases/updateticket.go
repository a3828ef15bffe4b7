package usecases

import (
	"context"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

// UpdateTicketCommand carries only the fields a caller is allowed to change.
// Nil pointers mean "leave as is". Number, command, unit and audit fields are
// not updatable through this path.
type UpdateTicketCommand struct {
	Principal          authorization.Principal
	TicketID           uint
	Status             *string
	Priority           *string
	Description        *string
	IsRecurring        *bool
	AssignedTechnician *string
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error)
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error) {
	uc.logger.Infow("executing update ticket use case",
		"ticket_id", cmd.TicketID, "username", cmd.Principal.Username)

	scope := ticket.ResolveScope(cmd.Principal)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !scope.Allows(t) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !ticket.CanModify(cmd.Principal, t) {
		uc.logger.Warnw("update rejected",
			"ticket_id", cmd.TicketID, "username", cmd.Principal.Username, "role", cmd.Principal.Role)
		return nil, errors.NewForbiddenError("insufficient permissions to modify this ticket")
	}

	if err := uc.applyChanges(t, cmd); err != nil {
		return nil, err
	}

	t.MarkModifiedBy(cmd.Principal.Username)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID(), "number", t.Number())

	result := toTicketResult(t)
	return &result, nil
}

func (uc *UpdateTicketUseCase) applyChanges(t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return errors.NewValidationError("invalid status")
		}
		// ChangeStatus also maintains the close date: entering resolved
		// stamps it, leaving resolved clears it.
		if err := t.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return errors.NewValidationError("invalid priority")
		}
		if err := t.ChangePriority(priority); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.IsRecurring != nil {
		t.SetRecurring(*cmd.IsRecurring)
	}

	if cmd.AssignedTechnician != nil {
		if *cmd.AssignedTechnician == "" {
			t.AssignTechnician(nil)
		} else {
			t.AssignTechnician(cmd.AssignedTechnician)
		}
	}

	return nil
}
