package usecases

import (
	"time"

	"faultdesk/internal/domain/ticket"
)

type CommentResult struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type TicketResult struct {
	ID                 uint            `json:"id"`
	Number             int             `json:"ticketNumber"`
	Subject            string          `json:"subject"`
	Command            string          `json:"command"`
	Unit               string          `json:"unit"`
	Priority           string          `json:"priority"`
	Status             string          `json:"status"`
	IsRecurring        bool            `json:"isRecurring"`
	Description        string          `json:"description"`
	OpenDate           time.Time       `json:"openDate"`
	CloseDate          *time.Time      `json:"closeDate,omitempty"`
	AssignedTechnician *string         `json:"assignedTechnician,omitempty"`
	CreatedBy          string          `json:"createdBy"`
	LastModifiedBy     *string         `json:"lastModifiedBy,omitempty"`
	Comments           []CommentResult `json:"comments,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func toTicketResult(t *ticket.Ticket) TicketResult {
	result := TicketResult{
		ID:                 t.ID(),
		Number:             t.Number(),
		Subject:            t.Subject(),
		Command:            t.Command(),
		Unit:               t.Unit(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		IsRecurring:        t.IsRecurring(),
		Description:        t.Description(),
		OpenDate:           t.OpenDate(),
		CloseDate:          t.CloseDate(),
		AssignedTechnician: t.AssignedTechnician(),
		CreatedBy:          t.CreatedBy(),
		LastModifiedBy:     t.LastModifiedBy(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
	}

	for _, c := range t.Comments() {
		result.Comments = append(result.Comments, CommentResult{
			ID:        c.ID(),
			Author:    c.Author(),
			Content:   c.Content(),
			CreatedAt: c.CreatedAt(),
		})
	}

	return result
}

func toTicketResults(tickets []*ticket.Ticket) []TicketResult {
	results := make([]TicketResult, len(tickets))
	for i, t := range tickets {
		results[i] = toTicketResult(t)
	}
	return results
}
