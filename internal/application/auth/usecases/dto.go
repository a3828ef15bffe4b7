package usecases

import (
	"time"

	"faultdesk/internal/domain/user"
)

type UserResult struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	Command   string     `json:"command"`
	Unit      string     `json:"unit"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toUserResult(u *user.User) UserResult {
	return UserResult{
		ID:        u.ID(),
		Username:  u.Username(),
		Role:      u.Role().String(),
		Command:   u.Command(),
		Unit:      u.Unit(),
		IsActive:  u.IsActive(),
		LastLogin: u.LastLogin(),
		CreatedAt: u.CreatedAt(),
	}
}
