package orgunit

import (
	"fmt"
	"strings"
	"time"

	"faultdesk/internal/shared/biztime"
)

// Unit belongs to exactly one command. Its name is unique within that
// command, not globally.
type Unit struct {
	id          uint
	name        string
	commandID   uint
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUnit(name string, commandID uint, description string) (*Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("unit name is required")
	}
	if len([]rune(name)) > nameMaxLen {
		return nil, fmt.Errorf("unit name exceeds maximum length of %d characters", nameMaxLen)
	}
	if commandID == 0 {
		return nil, fmt.Errorf("unit must belong to a command")
	}

	now := biztime.NowUTC()
	return &Unit{
		name:        name,
		commandID:   commandID,
		description: strings.TrimSpace(description),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructUnit(
	id uint,
	name string,
	commandID uint,
	description string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Unit, error) {
	if id == 0 {
		return nil, fmt.Errorf("unit ID cannot be zero")
	}
	if commandID == 0 {
		return nil, fmt.Errorf("unit must belong to a command")
	}
	return &Unit{
		id:          id,
		name:        name,
		commandID:   commandID,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (u *Unit) ID() uint             { return u.id }
func (u *Unit) Name() string         { return u.name }
func (u *Unit) CommandID() uint      { return u.commandID }
func (u *Unit) Description() string  { return u.description }
func (u *Unit) IsActive() bool       { return u.isActive }
func (u *Unit) CreatedAt() time.Time { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time { return u.updatedAt }

func (u *Unit) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("unit ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("unit ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *Unit) UpdateDescription(description string) {
	u.description = strings.TrimSpace(description)
	u.updatedAt = biztime.NowUTC()
}

func (u *Unit) Deactivate() error {
	if !u.isActive {
		return fmt.Errorf("unit is already inactive")
	}
	u.isActive = false
	u.updatedAt = biztime.NowUTC()
	return nil
}
