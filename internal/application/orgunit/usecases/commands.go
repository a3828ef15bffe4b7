package usecases

import (
	"context"
	"time"

	"faultdesk/internal/domain/orgunit"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type CommandResult struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCommandResult(c *orgunit.Command) CommandResult {
	return CommandResult{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

type ListCommandsExecutor interface {
	Execute(ctx context.Context) ([]CommandResult, error)
}

type ListCommandsUseCase struct {
	commandRepo orgunit.CommandRepository
	logger      logger.Interface
}

func NewListCommandsUseCase(commandRepo orgunit.CommandRepository, logger logger.Interface) *ListCommandsUseCase {
	return &ListCommandsUseCase{commandRepo: commandRepo, logger: logger}
}

func (uc *ListCommandsUseCase) Execute(ctx context.Context) ([]CommandResult, error) {
	commands, err := uc.commandRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list commands", "error", err)
		return nil, err
	}

	results := make([]CommandResult, len(commands))
	for i, c := range commands {
		results[i] = toCommandResult(c)
	}
	return results, nil
}

type CreateCommandCommand struct {
	Principal   authorization.Principal
	Name        string
	Description string
}

type CreateCommandExecutor interface {
	Execute(ctx context.Context, cmd CreateCommandCommand) (*CommandResult, error)
}

type CreateCommandUseCase struct {
	commandRepo orgunit.CommandRepository
	logger      logger.Interface
}

func NewCreateCommandUseCase(commandRepo orgunit.CommandRepository, logger logger.Interface) *CreateCommandUseCase {
	return &CreateCommandUseCase{commandRepo: commandRepo, logger: logger}
}

func (uc *CreateCommandUseCase) Execute(ctx context.Context, cmd CreateCommandCommand) (*CommandResult, error) {
	if !cmd.Principal.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can manage commands")
	}

	c, err := orgunit.NewCommand(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commandRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save command", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("command created", "command_id", c.ID(), "name", c.Name())

	result := toCommandResult(c)
	return &result, nil
}

type DeactivateCommandCommand struct {
	Principal authorization.Principal
	CommandID uint
}

type DeactivateCommandExecutor interface {
	Execute(ctx context.Context, cmd DeactivateCommandCommand) error
}

type DeactivateCommandUseCase struct {
	commandRepo orgunit.CommandRepository
	unitRepo    orgunit.UnitRepository
	logger      logger.Interface
}

func NewDeactivateCommandUseCase(
	commandRepo orgunit.CommandRepository,
	unitRepo orgunit.UnitRepository,
	logger logger.Interface,
) *DeactivateCommandUseCase {
	return &DeactivateCommandUseCase{commandRepo: commandRepo, unitRepo: unitRepo, logger: logger}
}

func (uc *DeactivateCommandUseCase) Execute(ctx context.Context, cmd DeactivateCommandCommand) error {
	if !cmd.Principal.Role.IsAdmin() {
		return errors.NewForbiddenError("only administrators can manage commands")
	}

	c, err := uc.commandRepo.FindByID(ctx, cmd.CommandID)
	if err != nil {
		return err
	}

	units, err := uc.unitRepo.ListActiveByCommand(ctx, c.ID())
	if err != nil {
		return err
	}
	if len(units) > 0 {
		return errors.NewConflictError("command still has active units")
	}

	if err := c.Deactivate(); err != nil {
		return errors.NewConflictError(err.Error())
	}

	if err := uc.commandRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to deactivate command", "command_id", cmd.CommandID, "error", err)
		return err
	}

	uc.logger.Infow("command deactivated", "command_id", c.ID(), "name", c.Name())
	return nil
}
