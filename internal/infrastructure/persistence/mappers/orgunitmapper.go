package mappers

import (
	"time"

	"faultdesk/internal/domain/orgunit"
	"faultdesk/internal/infrastructure/persistence/models"
)

type OrgUnitMapper struct{}

func NewOrgUnitMapper() *OrgUnitMapper {
	return &OrgUnitMapper{}
}

func (m *OrgUnitMapper) CommandToModel(c *orgunit.Command) *models.CommandModel {
	return &models.CommandModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}
}

func (m *OrgUnitMapper) CommandToDomain(model *models.CommandModel) (*orgunit.Command, error) {
	return orgunit.ReconstructCommand(
		model.ID,
		model.Name,
		model.Description,
		model.IsActive,
		orgunitConvertMillisToTime(model.CreatedAt),
		orgunitConvertMillisToTime(model.UpdatedAt),
	)
}

func (m *OrgUnitMapper) UnitToModel(u *orgunit.Unit) *models.UnitModel {
	return &models.UnitModel{
		ID:          u.ID(),
		Name:        u.Name(),
		CommandID:   u.CommandID(),
		Description: u.Description(),
		IsActive:    u.IsActive(),
		CreatedAt:   u.CreatedAt().UnixMilli(),
		UpdatedAt:   u.UpdatedAt().UnixMilli(),
	}
}

func (m *OrgUnitMapper) UnitToDomain(model *models.UnitModel) (*orgunit.Unit, error) {
	return orgunit.ReconstructUnit(
		model.ID,
		model.Name,
		model.CommandID,
		model.Description,
		model.IsActive,
		orgunitConvertMillisToTime(model.CreatedAt),
		orgunitConvertMillisToTime(model.UpdatedAt),
	)
}

func orgunitConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
