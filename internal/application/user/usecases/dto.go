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
	UpdatedAt time.Time  `json:"updatedAt"`
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
		UpdatedAt: u.UpdatedAt(),
	}
}

func toUserResults(users []*user.User) []UserResult {
	results := make([]UserResult, len(users))
	for i, u := range users {
		results[i] = toUserResult(u)
	}
	return results
}
