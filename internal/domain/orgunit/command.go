// Package orgunit holds the organizational reference data tickets are scoped
// by: commands, and the units nested under them.
package orgunit

import (
	"fmt"
	"strings"
	"time"

	"faultdesk/internal/shared/biztime"
)

const nameMaxLen = 100

type Command struct {
	id          uint
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCommand(name, description string) (*Command, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("command name is required")
	}
	if len([]rune(name)) > nameMaxLen {
		return nil, fmt.Errorf("command name exceeds maximum length of %d characters", nameMaxLen)
	}

	now := biztime.NowUTC()
	return &Command{
		name:        name,
		description: strings.TrimSpace(description),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCommand(
	id uint,
	name string,
	description string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Command, error) {
	if id == 0 {
		return nil, fmt.Errorf("command ID cannot be zero")
	}
	return &Command{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Command) ID() uint             { return c.id }
func (c *Command) Name() string         { return c.name }
func (c *Command) Description() string  { return c.description }
func (c *Command) IsActive() bool       { return c.isActive }
func (c *Command) CreatedAt() time.Time { return c.createdAt }
func (c *Command) UpdatedAt() time.Time { return c.updatedAt }

func (c *Command) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("command ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("command ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Command) UpdateDescription(description string) {
	c.description = strings.TrimSpace(description)
	c.updatedAt = biztime.NowUTC()
}

func (c *Command) Deactivate() error {
	if !c.isActive {
		return fmt.Errorf("command is already inactive")
	}
	c.isActive = false
	c.updatedAt = biztime.NowUTC()
	return nil
}
