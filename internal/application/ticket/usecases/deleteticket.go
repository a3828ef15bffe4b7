package usecases

import (
	"context"

	"faultdesk/internal/domain/ticket"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Principal authorization.Principal
	TicketID  uint
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if !cmd.Principal.Role.IsAdmin() {
		return errors.NewForbiddenError("only administrators can delete tickets")
	}

	// FindByID excludes soft-deleted rows, so deleting twice reports not
	// found on the second attempt.
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := t.SoftDelete(cmd.Principal.Username); err != nil {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID(), "number", t.Number(), "deleted_by", cmd.Principal.Username)

	return nil
}
