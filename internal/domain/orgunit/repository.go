package orgunit

import "context"

type CommandRepository interface {
	Save(ctx context.Context, c *Command) error
	Update(ctx context.Context, c *Command) error
	FindByID(ctx context.Context, id uint) (*Command, error)
	FindByName(ctx context.Context, name string) (*Command, error)
	ListActive(ctx context.Context) ([]*Command, error)
}

type UnitRepository interface {
	Save(ctx context.Context, u *Unit) error
	Update(ctx context.Context, u *Unit) error
	FindByID(ctx context.Context, id uint) (*Unit, error)
	ListActiveByCommand(ctx context.Context, commandID uint) ([]*Unit, error)
	ListActive(ctx context.Context) ([]*Unit, error)
}
