package ticket

import (
	"context"
	"time"

	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/shared/query"
)

// Filter narrows a ticket listing. The Scope is always applied; the caller's
// additive constraints combine with it by logical AND, so explicit filters can
// never widen visibility past the scope.
type Filter struct {
	Scope       Scope
	Status      *vo.TicketStatus
	Priority    *vo.Priority
	Number      *int
	IsRecurring *bool
	// Command and Unit are case-insensitive substring filters applied inside
	// the scope restriction.
	Command string
	Unit    string
	// Search is a case-insensitive substring match on the description.
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time

	query.BaseFilter
}

// Stats holds the dashboard counts, computed over the scoped non-deleted set.
type Stats struct {
	Total               int64 `json:"totalTickets"`
	Open                int64 `json:"openTickets"`
	InProgress          int64 `json:"inProgressTickets"`
	Resolved            int64 `json:"resolvedTickets"`
	OperationalPriority int64 `json:"operationalPriorityTickets"`
	Recurring           int64 `json:"recurringTickets"`
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// FindByID excludes soft-deleted tickets, like every other lookup.
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	// FindByIDIncludingDeleted is the admin-only diagnostic path.
	FindByIDIncludingDeleted(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	SaveComment(ctx context.Context, c *Comment) error
	Stats(ctx context.Context, scope Scope) (*Stats, error)
	// Recent returns the newest-created tickets in scope, without comments.
	Recent(ctx context.Context, scope Scope, limit int) ([]*Ticket, error)
	// MaxNumber scans all tickets including soft-deleted ones, so a deleted
	// ticket's number is never reused.
	MaxNumber(ctx context.Context) (int, error)
}

// NumberAllocator hands out ticket numbers. Allocation must be atomic under
// concurrent creation; interactive creation and bulk import share one
// allocator so the two paths cannot collide.
type NumberAllocator interface {
	Next(ctx context.Context) (int, error)
}
