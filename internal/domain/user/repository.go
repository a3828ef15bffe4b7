package user

import (
	"context"

	"faultdesk/internal/shared/query"
)

type Filter struct {
	Role     *string
	Command  *string
	IsActive *bool
	query.BaseFilter
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	// CountActiveAdmins backs the last-admin guard on role changes and
	// deactivation.
	CountActiveAdmins(ctx context.Context) (int64, error)
}
