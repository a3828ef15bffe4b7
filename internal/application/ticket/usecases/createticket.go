package usecases

import (
	"context"
	"time"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/db"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Principal   authorization.Principal
	Subject     string
	Command     string
	Unit        string
	Priority    string
	Description string
	IsRecurring bool
}

type CreateTicketResult struct {
	TicketID  uint
	Number    int
	Status    string
	CreatedAt time.Time
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	allocator  ticket.NumberAllocator
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	allocator ticket.NumberAllocator,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		allocator:  allocator,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"username", cmd.Principal.Username, "command", cmd.Command)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	command, unit := uc.resolvePlacement(cmd)

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityNormal
	}

	newTicket, err := ticket.NewTicket(
		cmd.Subject,
		command,
		unit,
		priority,
		cmd.Description,
		cmd.IsRecurring,
		cmd.Principal.Username,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Number allocation and the insert share one transaction so the
	// sequence row lock covers both; concurrent creations serialize on it
	// and a failed insert rolls the number back.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, err := uc.allocator.Next(txCtx)
		if err != nil {
			return err
		}
		if err := newTicket.SetNumber(number); err != nil {
			return err
		}
		return uc.ticketRepo.Save(txCtx, newTicket)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(), "number", newTicket.Number())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Number:    newTicket.Number(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// resolvePlacement decides which command and unit the ticket lands in.
// Non-admins always file into their own command; admins may file anywhere
// but fall back to their own assignment when the request leaves it blank.
func (uc *CreateTicketUseCase) resolvePlacement(cmd CreateTicketCommand) (string, string) {
	command := cmd.Command
	unit := cmd.Unit

	if !cmd.Principal.Role.IsAdmin() {
		command = cmd.Principal.Command
	}
	if command == "" {
		command = cmd.Principal.Command
	}
	if unit == "" {
		unit = cmd.Principal.Unit
	}

	return command, unit
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if !authorization.HasMinimumRole(cmd.Principal.Role, authorization.RoleTechnician) {
		return errors.NewForbiddenError("insufficient role to create tickets")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if cmd.Priority != "" {
		priority := vo.Priority(cmd.Priority)
		if !priority.IsValid() {
			return errors.NewValidationError("invalid priority")
		}
	}

	return nil
}
