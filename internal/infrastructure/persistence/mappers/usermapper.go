package mappers

import (
	"time"

	"faultdesk/internal/domain/user"
	"faultdesk/internal/infrastructure/persistence/models"
	"faultdesk/internal/shared/authorization"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Command:      u.Command(),
		Unit:         u.Unit(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}

	if u.LastLogin() != nil {
		last := u.LastLogin().UnixMilli()
		model.LastLogin = &last
	}

	return model
}

func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	role, _ := authorization.ParseUserRole(model.Role)

	var lastLogin *time.Time
	if model.LastLogin != nil {
		t := userConvertMillisToTime(*model.LastLogin)
		lastLogin = &t
	}

	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		role,
		model.Command,
		model.Unit,
		model.IsActive,
		lastLogin,
		userConvertMillisToTime(model.CreatedAt),
		userConvertMillisToTime(model.UpdatedAt),
	)
}

func userConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
