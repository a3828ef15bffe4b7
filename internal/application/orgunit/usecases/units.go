package usecases

import (
	"context"
	"time"

	"faultdesk/internal/domain/orgunit"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type UnitResult struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	CommandID   uint      `json:"commandId"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUnitResult(u *orgunit.Unit) UnitResult {
	return UnitResult{
		ID:          u.ID(),
		Name:        u.Name(),
		CommandID:   u.CommandID(),
		Description: u.Description(),
		IsActive:    u.IsActive(),
		CreatedAt:   u.CreatedAt(),
	}
}

type ListUnitsQuery struct {
	// CommandID narrows the listing to one command; zero lists all.
	CommandID uint
}

type ListUnitsExecutor interface {
	Execute(ctx context.Context, query ListUnitsQuery) ([]UnitResult, error)
}

type ListUnitsUseCase struct {
	unitRepo orgunit.UnitRepository
	logger   logger.Interface
}

func NewListUnitsUseCase(unitRepo orgunit.UnitRepository, logger logger.Interface) *ListUnitsUseCase {
	return &ListUnitsUseCase{unitRepo: unitRepo, logger: logger}
}

func (uc *ListUnitsUseCase) Execute(ctx context.Context, query ListUnitsQuery) ([]UnitResult, error) {
	var units []*orgunit.Unit
	var err error
	if query.CommandID != 0 {
		units, err = uc.unitRepo.ListActiveByCommand(ctx, query.CommandID)
	} else {
		units, err = uc.unitRepo.ListActive(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list units", "error", err)
		return nil, err
	}

	results := make([]UnitResult, len(units))
	for i, u := range units {
		results[i] = toUnitResult(u)
	}
	return results, nil
}

type CreateUnitCommand struct {
	Principal   authorization.Principal
	Name        string
	CommandID   uint
	Description string
}

type CreateUnitExecutor interface {
	Execute(ctx context.Context, cmd CreateUnitCommand) (*UnitResult, error)
}

type CreateUnitUseCase struct {
	unitRepo    orgunit.UnitRepository
	commandRepo orgunit.CommandRepository
	logger      logger.Interface
}

func NewCreateUnitUseCase(
	unitRepo orgunit.UnitRepository,
	commandRepo orgunit.CommandRepository,
	logger logger.Interface,
) *CreateUnitUseCase {
	return &CreateUnitUseCase{unitRepo: unitRepo, commandRepo: commandRepo, logger: logger}
}

func (uc *CreateUnitUseCase) Execute(ctx context.Context, cmd CreateUnitCommand) (*UnitResult, error) {
	if !cmd.Principal.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can manage units")
	}

	parent, err := uc.commandRepo.FindByID(ctx, cmd.CommandID)
	if err != nil {
		return nil, err
	}
	if !parent.IsActive() {
		return nil, errors.NewConflictError("parent command is inactive")
	}

	u, err := orgunit.NewUnit(cmd.Name, parent.ID(), cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.unitRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save unit", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("unit created", "unit_id", u.ID(), "name", u.Name(), "command_id", parent.ID())

	result := toUnitResult(u)
	return &result, nil
}

type DeactivateUnitCommand struct {
	Principal authorization.Principal
	UnitID    uint
}

type DeactivateUnitExecutor interface {
	Execute(ctx context.Context, cmd DeactivateUnitCommand) error
}

type DeactivateUnitUseCase struct {
	unitRepo orgunit.UnitRepository
	logger   logger.Interface
}

func NewDeactivateUnitUseCase(unitRepo orgunit.UnitRepository, logger logger.Interface) *DeactivateUnitUseCase {
	return &DeactivateUnitUseCase{unitRepo: unitRepo, logger: logger}
}

func (uc *DeactivateUnitUseCase) Execute(ctx context.Context, cmd DeactivateUnitCommand) error {
	if !cmd.Principal.Role.IsAdmin() {
		return errors.NewForbiddenError("only administrators can manage units")
	}

	u, err := uc.unitRepo.FindByID(ctx, cmd.UnitID)
	if err != nil {
		return err
	}

	if err := u.Deactivate(); err != nil {
		return errors.NewConflictError(err.Error())
	}

	if err := uc.unitRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to deactivate unit", "unit_id", cmd.UnitID, "error", err)
		return err
	}

	uc.logger.Infow("unit deactivated", "unit_id", u.ID(), "name", u.Name())
	return nil
}
