package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"faultdesk/internal/domain/orgunit"
	"faultdesk/internal/infrastructure/persistence/mappers"
	"faultdesk/internal/infrastructure/persistence/models"
	db "faultdesk/internal/shared/db"
	appErrors "faultdesk/internal/shared/errors"
)

type CommandRepository struct {
	db     *gorm.DB
	mapper *mappers.OrgUnitMapper
}

func NewCommandRepository(db *gorm.DB) *CommandRepository {
	return &CommandRepository{
		db:     db,
		mapper: mappers.NewOrgUnitMapper(),
	}
}

func (r *CommandRepository) Save(ctx context.Context, c *orgunit.Command) error {
	model := r.mapper.CommandToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("command name already exists")
		}
		return fmt.Errorf("failed to save command: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommandRepository) Update(ctx context.Context, c *orgunit.Command) error {
	model := r.mapper.CommandToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CommandModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update command: %w", result.Error)
	}

	return nil
}

func (r *CommandRepository) FindByID(ctx context.Context, id uint) (*orgunit.Command, error) {
	var model models.CommandModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("command not found")
		}
		return nil, fmt.Errorf("failed to find command: %w", err)
	}

	return r.mapper.CommandToDomain(&model)
}

func (r *CommandRepository) FindByName(ctx context.Context, name string) (*orgunit.Command, error) {
	var model models.CommandModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("command not found")
		}
		return nil, fmt.Errorf("failed to find command: %w", err)
	}

	return r.mapper.CommandToDomain(&model)
}

func (r *CommandRepository) ListActive(ctx context.Context) ([]*orgunit.Command, error) {
	var commandModels []models.CommandModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&commandModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list commands: %w", err)
	}

	commands := make([]*orgunit.Command, len(commandModels))
	for i, model := range commandModels {
		c, err := r.mapper.CommandToDomain(&model)
		if err != nil {
			return nil, err
		}
		commands[i] = c
	}

	return commands, nil
}

type UnitRepository struct {
	db     *gorm.DB
	mapper *mappers.OrgUnitMapper
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{
		db:     db,
		mapper: mappers.NewOrgUnitMapper(),
	}
}

func (r *UnitRepository) Save(ctx context.Context, u *orgunit.Unit) error {
	model := r.mapper.UnitToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("unit name already exists in this command")
		}
		return fmt.Errorf("failed to save unit: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UnitRepository) Update(ctx context.Context, u *orgunit.Unit) error {
	model := r.mapper.UnitToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UnitModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update unit: %w", result.Error)
	}

	return nil
}

func (r *UnitRepository) FindByID(ctx context.Context, id uint) (*orgunit.Unit, error) {
	var model models.UnitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("unit not found")
		}
		return nil, fmt.Errorf("failed to find unit: %w", err)
	}

	return r.mapper.UnitToDomain(&model)
}

func (r *UnitRepository) ListActiveByCommand(ctx context.Context, commandID uint) ([]*orgunit.Unit, error) {
	return r.listActive(ctx, func(query *gorm.DB) *gorm.DB {
		return query.Where("command_id = ?", commandID)
	})
}

func (r *UnitRepository) ListActive(ctx context.Context) ([]*orgunit.Unit, error) {
	return r.listActive(ctx, nil)
}

func (r *UnitRepository) listActive(ctx context.Context, refine func(*gorm.DB) *gorm.DB) ([]*orgunit.Unit, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("is_active = ?", true)
	if refine != nil {
		query = refine(query)
	}

	var unitModels []models.UnitModel
	if err := query.Order("name ASC").Find(&unitModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	units := make([]*orgunit.Unit, len(unitModels))
	for i, model := range unitModels {
		u, err := r.mapper.UnitToDomain(&model)
		if err != nil {
			return nil, err
		}
		units[i] = u
	}

	return units, nil
}
