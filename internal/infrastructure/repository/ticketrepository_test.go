package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/infrastructure/persistence/models"
	"faultdesk/internal/shared/authorization"
	appErrors "faultdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.TicketModel{}, &models.CommentModel{}, &models.SequenceModel{})
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, number int, command, unit string, priority vo.Priority) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Test fault", command, unit, priority,
		"Detailed fault description", false, "tech1")
	require.NoError(t, err)
	require.NoError(t, tk.SetNumber(number))
	return tk
}

func adminScope() ticket.Scope {
	return ticket.ResolveScope(authorization.Principal{Role: authorization.RoleAdmin})
}

func TestTicketRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("save assigns storage ID", func(t *testing.T) {
		tk := createTestTicket(t, 1, "North Command", "Alpha Unit", vo.PriorityNormal)
		require.NoError(t, repo.Save(ctx, tk))
		assert.NotZero(t, tk.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		tk := createTestTicket(t, 2, "North Command", "Alpha Unit", vo.PriorityUrgent)
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, found.Number())
		assert.Equal(t, "Test fault", found.Subject())
		assert.Equal(t, "North Command", found.Command())
		assert.Equal(t, vo.PriorityUrgent, found.Priority())
		assert.Equal(t, vo.StatusOpen, found.Status())
		assert.Nil(t, found.CloseDate())
		assert.Equal(t, "tech1", found.CreatedBy())
	})

	t.Run("duplicate number conflicts", func(t *testing.T) {
		tk1 := createTestTicket(t, 50, "North Command", "Alpha Unit", vo.PriorityNormal)
		require.NoError(t, repo.Save(ctx, tk1))

		tk2 := createTestTicket(t, 50, "North Command", "Alpha Unit", vo.PriorityNormal)
		err := repo.Save(ctx, tk2)
		require.Error(t, err)
		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("missing ticket is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		require.Error(t, err)
		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("resolve then reopen clears the stored close date", func(t *testing.T) {
		tk := createTestTicket(t, 1, "North Command", "Alpha Unit", vo.PriorityNormal)
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusResolved, found.Status())
		require.NotNil(t, found.CloseDate())

		require.NoError(t, found.ChangeStatus(vo.StatusOpen))
		require.NoError(t, repo.Update(ctx, found))

		reopened, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusOpen, reopened.Status())
		assert.Nil(t, reopened.CloseDate(), "cleared close date must persist")
	})

	t.Run("cleared technician persists", func(t *testing.T) {
		tk := createTestTicket(t, 2, "North Command", "Alpha Unit", vo.PriorityNormal)
		name := "sgt-cohen"
		tk.AssignTechnician(&name)
		require.NoError(t, repo.Save(ctx, tk))

		tk.AssignTechnician(nil)
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Nil(t, found.AssignedTechnician())
	})
}

func TestTicketRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, 1, "North Command", "Alpha Unit", vo.PriorityNormal)
	require.NoError(t, repo.Save(ctx, tk))
	require.NoError(t, tk.SoftDelete("admin1"))
	require.NoError(t, repo.Update(ctx, tk))

	_, err := repo.FindByID(ctx, tk.ID())
	require.Error(t, err, "normal lookup must not see deleted rows")

	found, err := repo.FindByIDIncludingDeleted(ctx, tk.ID())
	require.NoError(t, err)
	assert.True(t, found.IsDeleted())
	assert.NotNil(t, found.DeletedAt())
}

func TestTicketRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	seed := []struct {
		number   int
		command  string
		unit     string
		priority vo.Priority
	}{
		{1, "North Command", "Alpha Unit", vo.PriorityNormal},
		{2, "North Command", "Bravo Unit", vo.PriorityUrgent},
		{3, "South Command", "Alpha Unit", vo.PriorityOperational},
	}
	for _, s := range seed {
		require.NoError(t, repo.Save(ctx, createTestTicket(t, s.number, s.command, s.unit, s.priority)))
	}

	deleted := createTestTicket(t, 4, "North Command", "Alpha Unit", vo.PriorityNormal)
	require.NoError(t, repo.Save(ctx, deleted))
	require.NoError(t, deleted.SoftDelete("admin1"))
	require.NoError(t, repo.Update(ctx, deleted))

	t.Run("admin sees everything except deleted", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.Filter{Scope: adminScope()})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, tickets, 3)
	})

	t.Run("technician scope hides other commands", func(t *testing.T) {
		scope := ticket.ResolveScope(authorization.Principal{
			Role: authorization.RoleTechnician, Command: "North Command", Unit: "Alpha Unit",
		})
		tickets, total, err := repo.List(ctx, ticket.Filter{Scope: scope})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, tk := range tickets {
			assert.Equal(t, "North Command", tk.Command())
		}
	})

	t.Run("viewer scope hides other units", func(t *testing.T) {
		scope := ticket.ResolveScope(authorization.Principal{
			Role: authorization.RoleViewer, Command: "North Command", Unit: "Alpha Unit",
		})
		_, total, err := repo.List(ctx, ticket.Filter{Scope: scope})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("priority filter", func(t *testing.T) {
		priority := vo.PriorityUrgent
		_, total, err := repo.List(ctx, ticket.Filter{Scope: adminScope(), Priority: &priority})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("number filter", func(t *testing.T) {
		number := 3
		tickets, total, err := repo.List(ctx, ticket.Filter{Scope: adminScope(), Number: &number})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, "South Command", tickets[0].Command())
	})

	t.Run("description search is case-insensitive", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.Filter{Scope: adminScope(), Search: "DETAILED"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("sort whitelist rejects unknown fields", func(t *testing.T) {
		filter := ticket.Filter{Scope: adminScope()}
		filter.SortBy = "number; DROP TABLE tickets"
		_, _, err := repo.List(ctx, filter)
		require.NoError(t, err, "unknown sort fields fall back to the default ordering")
	})

	t.Run("pagination", func(t *testing.T) {
		filter := ticket.Filter{Scope: adminScope()}
		filter.SortBy = "number"
		filter.SortOrder = "asc"
		filter.Page = 2
		filter.Limit = 2

		tickets, total, err := repo.List(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, 3, tickets[0].Number())
	})
}

func TestTicketRepository_Comments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, 1, "North Command", "Alpha Unit", vo.PriorityNormal)
	require.NoError(t, repo.Save(ctx, tk))

	first, err := ticket.NewComment(tk.ID(), "tech1", "Checked the wiring")
	require.NoError(t, err)
	require.NoError(t, repo.SaveComment(ctx, first))
	assert.NotZero(t, first.ID())

	second, err := ticket.NewComment(tk.ID(), "tech2", "Ordered a spare part")
	require.NoError(t, err)
	require.NoError(t, repo.SaveComment(ctx, second))

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	comments := found.Comments()
	require.Len(t, comments, 2)
	assert.Equal(t, "Checked the wiring", comments[0].Content())
	assert.Equal(t, "Ordered a spare part", comments[1].Content())
}

func TestTicketRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	open := createTestTicket(t, 1, "North Command", "Alpha Unit", vo.PriorityNormal)
	require.NoError(t, repo.Save(ctx, open))

	inProgress := createTestTicket(t, 2, "North Command", "Alpha Unit", vo.PriorityOperational)
	require.NoError(t, inProgress.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, repo.Save(ctx, inProgress))

	resolved := createTestTicket(t, 3, "South Command", "Alpha Unit", vo.PriorityNormal)
	require.NoError(t, resolved.ChangeStatus(vo.StatusResolved))
	require.NoError(t, repo.Save(ctx, resolved))

	recurring, err := ticket.NewTicket("Recurring fault", "North Command", "Alpha Unit",
		vo.PriorityNormal, "Happens every week", true, "tech1")
	require.NoError(t, err)
	require.NoError(t, recurring.SetNumber(4))
	require.NoError(t, repo.Save(ctx, recurring))

	t.Run("admin counts everything", func(t *testing.T) {
		stats, err := repo.Stats(ctx, adminScope())
		require.NoError(t, err)
		assert.Equal(t, int64(4), stats.Total)
		assert.Equal(t, int64(2), stats.Open)
		assert.Equal(t, int64(1), stats.InProgress)
		assert.Equal(t, int64(1), stats.Resolved)
		assert.Equal(t, int64(1), stats.OperationalPriority)
		assert.Equal(t, int64(1), stats.Recurring)
	})

	t.Run("scoped counts are narrower", func(t *testing.T) {
		scope := ticket.ResolveScope(authorization.Principal{
			Role: authorization.RoleTechnician, Command: "South Command",
		})
		stats, err := repo.Stats(ctx, scope)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Total)
		assert.Equal(t, int64(1), stats.Resolved)
	})
}

func TestTicketRepository_MaxNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	max, err := repo.MaxNumber(ctx)
	require.NoError(t, err)
	assert.Zero(t, max, "empty table yields zero")

	tk := createTestTicket(t, 17, "North Command", "Alpha Unit", vo.PriorityNormal)
	require.NoError(t, repo.Save(ctx, tk))
	require.NoError(t, tk.SoftDelete("admin1"))
	require.NoError(t, repo.Update(ctx, tk))

	max, err = repo.MaxNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17, max, "soft-deleted numbers stay reserved")
}

func TestTicketRepository_Recent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Save(ctx, createTestTicket(t, i, "North Command", "Alpha Unit", vo.PriorityNormal)))
	}

	tickets, err := repo.Recent(ctx, adminScope(), 3)
	require.NoError(t, err)
	assert.Len(t, tickets, 3)
}
