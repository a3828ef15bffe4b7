package ticket

import (
	"fmt"
	"strings"
	"time"

	"faultdesk/internal/shared/biztime"
)

const (
	commentMinLen = 1
	commentMaxLen = 500
)

// Comment is an immutable entry in a ticket's append-only comment sequence.
// It has no lifecycle of its own.
type Comment struct {
	id        uint
	ticketID  uint
	author    string
	content   string
	createdAt time.Time
}

func NewComment(ticketID uint, author string, content string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if author == "" {
		return nil, fmt.Errorf("author is required")
	}
	content = strings.TrimSpace(content)
	n := len([]rune(content))
	if n < commentMinLen {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if n > commentMaxLen {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", commentMaxLen)
	}

	return &Comment{
		ticketID:  ticketID,
		author:    author,
		content:   content,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	author string,
	content string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		author:    author,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) Author() string       { return c.author }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
