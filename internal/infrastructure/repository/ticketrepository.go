package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"faultdesk/internal/domain/ticket"
	"faultdesk/internal/infrastructure/persistence/mappers"
	"faultdesk/internal/infrastructure/persistence/models"
	db "faultdesk/internal/shared/db"
	appErrors "faultdesk/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":         true,
	"number":     true,
	"subject":    true,
	"command":    true,
	"unit":       true,
	"status":     true,
	"priority":   true,
	"open_date":  true,
	"close_date": true,
	"created_at": true,
	"updated_at": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("ticket number already exists")
		}
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so zero values and cleared pointers (a close date removed
	// when a ticket is reopened) are written too.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.findByID(ctx, id, false)
}

func (r *TicketRepository) FindByIDIncludingDeleted(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.findByID(ctx, id, true)
}

func (r *TicketRepository) findByID(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	// Load comments in a single query and convert via mapper
	if err := r.loadComments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.Filter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyScope(tx.Model(&models.TicketModel{}), filter.Scope)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Number != nil {
		query = query.Where("number = ?", *filter.Number)
	}
	if filter.IsRecurring != nil {
		query = query.Where("is_recurring = ?", *filter.IsRecurring)
	}
	if filter.Command != "" {
		query = query.Where("LOWER(command) LIKE ?", likePattern(filter.Command))
	}
	if filter.Unit != "" {
		query = query.Where("LOWER(unit) LIKE ?", likePattern(filter.Unit))
	}
	if filter.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", likePattern(filter.Search))
	}
	if filter.DateFrom != nil {
		query = query.Where("open_date >= ?", filter.DateFrom.UnixMilli())
	}
	if filter.DateTo != nil {
		query = query.Where("open_date <= ?", filter.DateTo.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := "DESC"
		if filter.IsAscending() {
			order = "ASC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("open_date DESC")
	}

	query = query.Limit(filter.PageLimit()).Offset(filter.Offset())

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// statsRow mirrors the aggregation projection.
type statsRow struct {
	Total               int64
	Open                int64
	InProgress          int64
	Resolved            int64
	OperationalPriority int64
	Recurring           int64
}

// Stats computes all dashboard counters in a single grouped pass instead of
// one COUNT query per counter.
func (r *TicketRepository) Stats(ctx context.Context, scope ticket.Scope) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyScope(tx.Model(&models.TicketModel{}), scope)

	var row statsRow
	err := query.Select(
		"COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN status = 'open' THEN 1 ELSE 0 END), 0) AS `open`, " +
			"COALESCE(SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END), 0) AS in_progress, " +
			"COALESCE(SUM(CASE WHEN status = 'resolved' THEN 1 ELSE 0 END), 0) AS resolved, " +
			"COALESCE(SUM(CASE WHEN priority = 'operational' THEN 1 ELSE 0 END), 0) AS operational_priority, " +
			"COALESCE(SUM(CASE WHEN is_recurring THEN 1 ELSE 0 END), 0) AS recurring",
	).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute ticket stats: %w", err)
	}

	return &ticket.Stats{
		Total:               row.Total,
		Open:                row.Open,
		InProgress:          row.InProgress,
		Resolved:            row.Resolved,
		OperationalPriority: row.OperationalPriority,
		Recurring:           row.Recurring,
	}, nil
}

func (r *TicketRepository) Recent(ctx context.Context, scope ticket.Scope, limit int) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyScope(tx.Model(&models.TicketModel{}), scope)

	var ticketModels []models.TicketModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

// MaxNumber scans every ticket row including soft-deleted ones so a deleted
// ticket's number can never be handed out again.
func (r *TicketRepository) MaxNumber(ctx context.Context) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var max int
	err := tx.Model(&models.TicketModel{}).
		Select("COALESCE(MAX(number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to find max ticket number: %w", err)
	}

	return max, nil
}

// applyScope translates the visibility scope into query predicates. This is
// the multi-row twin of Scope.Allows.
func applyScope(query *gorm.DB, scope ticket.Scope) *gorm.DB {
	if !scope.IncludeDeleted() {
		query = query.Where("is_deleted = ?", false)
	}
	if command, ok := scope.CommandRestriction(); ok {
		query = query.Where("command = ?", command)
	}
	if unit, ok := scope.UnitRestriction(); ok {
		query = query.Where("unit = ?", unit)
	}
	return query
}

func likePattern(term string) string {
	escaped := strings.NewReplacer("%", "\\%", "_", "\\_").Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}

// loadComments queries comments for a ticket and adds them to the domain entity.
func (r *TicketRepository) loadComments(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	for _, cm := range commentModels {
		comment, err := r.mapper.CommentToDomain(&cm)
		if err != nil {
			return err
		}
		if err := t.AddComment(comment); err != nil {
			return err
		}
	}

	return nil
}
