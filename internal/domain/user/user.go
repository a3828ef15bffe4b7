package user

import (
	"fmt"
	"strings"
	"time"

	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/biztime"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
)

// User is the persisted account record. The request-scoped Principal is a
// projection of this aggregate.
type User struct {
	id           uint
	username     string
	passwordHash string
	role         authorization.UserRole
	command      string
	unit         string
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(
	username string,
	passwordHash string,
	role authorization.UserRole,
	command string,
	unit string,
) (*User, error) {
	username = strings.TrimSpace(username)
	if len([]rune(username)) < usernameMinLen {
		return nil, fmt.Errorf("username must be at least %d characters", usernameMinLen)
	}
	if len([]rune(username)) > usernameMaxLen {
		return nil, fmt.Errorf("username exceeds maximum length of %d characters", usernameMaxLen)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("command is required")
	}
	if strings.TrimSpace(unit) == "" {
		return nil, fmt.Errorf("unit is required")
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		command:      strings.TrimSpace(command),
		unit:         strings.TrimSpace(unit),
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	role authorization.UserRole,
	command string,
	unit string,
	isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		command:      command,
		unit:         unit,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                          { return u.id }
func (u *User) Username() string                  { return u.username }
func (u *User) PasswordHash() string              { return u.passwordHash }
func (u *User) Role() authorization.UserRole      { return u.role }
func (u *User) Command() string                   { return u.command }
func (u *User) Unit() string                      { return u.unit }
func (u *User) IsActive() bool                    { return u.isActive }
func (u *User) LastLogin() *time.Time             { return u.lastLogin }
func (u *User) CreatedAt() time.Time              { return u.createdAt }
func (u *User) UpdatedAt() time.Time              { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Principal projects the account into the transient request-scoped identity.
func (u *User) Principal() authorization.Principal {
	return authorization.Principal{
		UserID:   u.id,
		Username: u.username,
		Role:     u.role,
		Command:  u.command,
		Unit:     u.unit,
	}
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangeAssignment(command, unit string) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("command cannot be empty")
	}
	if strings.TrimSpace(unit) == "" {
		return fmt.Errorf("unit cannot be empty")
	}
	u.command = strings.TrimSpace(command)
	u.unit = strings.TrimSpace(unit)
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate soft-disables the account.
func (u *User) Deactivate() error {
	if !u.isActive {
		return fmt.Errorf("user is already inactive")
	}
	u.isActive = false
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLogin = &now
	u.updatedAt = now
}
