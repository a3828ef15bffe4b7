package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"faultdesk/internal/application/ticket/usecases"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/biztime"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Command     string `json:"command"`
	Unit        string `json:"unit"`
	Priority    string `json:"priority"`
	Description string `json:"description" binding:"required"`
	IsRecurring bool   `json:"isRecurring"`
}

func (r CreateTicketRequest) ToCommand(p authorization.Principal) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Principal:   p,
		Subject:     r.Subject,
		Command:     r.Command,
		Unit:        r.Unit,
		Priority:    r.Priority,
		Description: r.Description,
		IsRecurring: r.IsRecurring,
	}
}

type UpdateTicketRequest struct {
	Status             *string `json:"status"`
	Priority           *string `json:"priority"`
	Description        *string `json:"description"`
	IsRecurring        *bool   `json:"isRecurring"`
	AssignedTechnician *string `json:"assignedTechnician"`
}

func (r UpdateTicketRequest) ToCommand(p authorization.Principal, ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		Principal:          p,
		TicketID:           ticketID,
		Status:             r.Status,
		Priority:           r.Priority,
		Description:        r.Description,
		IsRecurring:        r.IsRecurring,
		AssignedTechnician: r.AssignedTechnician,
	}
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// parseListTicketsQuery reads list filters from the query string. Dates are
// YYYY-MM-DD, interpreted in the business timezone.
func parseListTicketsQuery(c *gin.Context, p authorization.Principal) (usecases.ListTicketsQuery, error) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListTicketsQuery{
		Principal: p,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Command:   c.Query("command"),
		Unit:      c.Query("unit"),
		Search:    c.Query("search"),
		Page:      pagination.Page,
		Limit:     pagination.Limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	if raw := c.Query("ticketNumber"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil || number <= 0 {
			return query, errors.NewValidationError("invalid ticket number filter")
		}
		query.Number = &number
	}

	if raw := c.Query("isRecurring"); raw != "" {
		recurring, err := strconv.ParseBool(raw)
		if err != nil {
			return query, errors.NewValidationError("invalid isRecurring filter")
		}
		query.IsRecurring = &recurring
	}

	if raw := c.Query("dateFrom"); raw != "" {
		from, err := biztime.ParseDateInBizTimezone(raw)
		if err != nil {
			return query, errors.NewValidationError("invalid dateFrom", "expected YYYY-MM-DD")
		}
		query.DateFrom = &from
	}

	if raw := c.Query("dateTo"); raw != "" {
		to, err := biztime.ParseDateInBizTimezone(raw)
		if err != nil {
			return query, errors.NewValidationError("invalid dateTo", "expected YYYY-MM-DD")
		}
		// Make the end bound inclusive of the whole day.
		endOfDay := to.AddDate(0, 0, 1).Add(-1)
		query.DateTo = &endOfDay
	}

	return query, nil
}
