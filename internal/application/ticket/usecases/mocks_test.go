package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/db"
	"faultdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                     func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                   func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc                 func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByIDIncludingDeletedFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc                     func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	SaveCommentFunc              func(ctx context.Context, c *ticket.Comment) error
	StatsFunc                    func(ctx context.Context, scope ticket.Scope) (*ticket.Stats, error)
	RecentFunc                   func(ctx context.Context, scope ticket.Scope, limit int) ([]*ticket.Ticket, error)
	MaxNumberFunc                func(ctx context.Context) (int, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByIDIncludingDeleted(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDIncludingDeletedFunc != nil {
		return m.FindByIDIncludingDeletedFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockTicketRepository) Stats(ctx context.Context, scope ticket.Scope) (*ticket.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, scope)
	}
	return &ticket.Stats{}, nil
}

func (m *mockTicketRepository) Recent(ctx context.Context, scope ticket.Scope, limit int) ([]*ticket.Ticket, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, scope, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) MaxNumber(ctx context.Context) (int, error) {
	if m.MaxNumberFunc != nil {
		return m.MaxNumberFunc(ctx)
	}
	return 0, nil
}

type mockAllocator struct {
	NextFunc func(ctx context.Context) (int, error)
	next     int
}

func (m *mockAllocator) Next(ctx context.Context) (int, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	m.next++
	return m.next, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Fatal(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})  {}

// newTestTxManager backs the transaction manager with an in-memory database
// so use cases that wrap repository calls in a transaction can run against
// function mocks.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

func adminPrincipal() authorization.Principal {
	return authorization.Principal{UserID: 1, Username: "admin1", Role: authorization.RoleAdmin, Command: "HQ", Unit: "Staff"}
}

func technicianPrincipal(command, unit string) authorization.Principal {
	return authorization.Principal{UserID: 2, Username: "tech1", Role: authorization.RoleTechnician, Command: command, Unit: unit}
}

func viewerPrincipal(command, unit string) authorization.Principal {
	return authorization.Principal{UserID: 3, Username: "viewer1", Role: authorization.RoleViewer, Command: command, Unit: unit}
}

func storedTicket(t *testing.T, id uint, number int, command, unit string, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	var closeDate *time.Time
	if status.IsResolved() {
		closeDate = &now
	}
	tk, err := ticket.ReconstructTicket(
		id, number, "Stored ticket", command, unit,
		vo.PriorityNormal, status, false,
		"Stored ticket description",
		now.Add(-time.Hour), closeDate, nil,
		false, nil, "tech1", nil, now, now,
	)
	require.NoError(t, err)
	return tk
}
