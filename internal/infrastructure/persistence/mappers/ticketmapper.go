package mappers

import (
	"time"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:                 t.ID(),
		Number:             t.Number(),
		Subject:            t.Subject(),
		Command:            t.Command(),
		Unit:               t.Unit(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		IsRecurring:        t.IsRecurring(),
		Description:        t.Description(),
		OpenDate:           t.OpenDate().UnixMilli(),
		AssignedTechnician: t.AssignedTechnician(),
		IsDeleted:          t.IsDeleted(),
		CreatedBy:          t.CreatedBy(),
		LastModifiedBy:     t.LastModifiedBy(),
		CreatedAt:          t.CreatedAt().UnixMilli(),
		UpdatedAt:          t.UpdatedAt().UnixMilli(),
	}

	if t.CloseDate() != nil {
		closed := t.CloseDate().UnixMilli()
		model.CloseDate = &closed
	}

	if t.DeletedAt() != nil {
		deleted := t.DeletedAt().UnixMilli()
		model.DeletedAt = &deleted
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// This method only converts the ticket fields. Comments must be loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, _ := vo.NewPriority(model.Priority)
	status, _ := vo.NewTicketStatus(model.Status)

	openDate := ticketConvertMillisToTime(model.OpenDate)
	createdAt := ticketConvertMillisToTime(model.CreatedAt)
	updatedAt := ticketConvertMillisToTime(model.UpdatedAt)

	var closeDate, deletedAt *time.Time
	if model.CloseDate != nil {
		t := ticketConvertMillisToTime(*model.CloseDate)
		closeDate = &t
	}
	if model.DeletedAt != nil {
		t := ticketConvertMillisToTime(*model.DeletedAt)
		deletedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Subject,
		model.Command,
		model.Unit,
		priority,
		status,
		model.IsRecurring,
		model.Description,
		openDate,
		closeDate,
		model.AssignedTechnician,
		model.IsDeleted,
		deletedAt,
		model.CreatedBy,
		model.LastModifiedBy,
		createdAt,
		updatedAt,
	)
}

// CommentToModel converts a comment domain entity to a persistence model.
func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Author:    c.Author(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

// CommentToDomain converts a comment persistence model to a domain entity.
func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	createdAt := ticketConvertMillisToTime(model.CreatedAt)

	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.Author,
		model.Content,
		createdAt,
	)
}

func ticketConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
