package usecases

import (
	"context"
	"time"

	"faultdesk/internal/domain/ticket"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/constants"
	"faultdesk/internal/shared/logger"
)

type ExportTicketsQuery struct {
	Principal authorization.Principal
	Status    string
	Priority  string
	Command   string
	Unit      string
	Search    string
	DateFrom  *time.Time
	DateTo    *time.Time
}

type ExportTicketsResult struct {
	Content  []byte
	Filename string
	Count    int
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error)
}

// WorkbookEncoder renders tickets into a spreadsheet file.
type WorkbookEncoder interface {
	Export(tickets []*ticket.Ticket) ([]byte, error)
}

type ExportTicketsUseCase struct {
	encoder    WorkbookEncoder
	logger     logger.Interface
	ticketRepo ticket.Repository
}

func NewExportTicketsUseCase(
	ticketRepo ticket.Repository,
	encoder WorkbookEncoder,
	logger logger.Interface,
) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		encoder:    encoder,
		logger:     logger,
		ticketRepo: ticketRepo,
	}
}

// Execute reuses the listing filter pipeline, capped at the export row
// limit, and renders the result as a workbook.
func (uc *ExportTicketsUseCase) Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error) {
	list := NewListTicketsUseCase(uc.ticketRepo, uc.logger)

	filter, err := list.buildFilter(ListTicketsQuery{
		Principal: query.Principal,
		Status:    query.Status,
		Priority:  query.Priority,
		Command:   query.Command,
		Unit:      query.Unit,
		Search:    query.Search,
		DateFrom:  query.DateFrom,
		DateTo:    query.DateTo,
		Page:      1,
		Limit:     constants.MaxExportRows,
		SortBy:    "open_date",
		SortOrder: "desc",
	})
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for export", "error", err)
		return nil, err
	}

	if total > int64(len(tickets)) {
		uc.logger.Warnw("export truncated",
			"total", total, "exported", len(tickets), "limit", constants.MaxExportRows)
	}

	content, err := uc.encoder.Export(tickets)
	if err != nil {
		uc.logger.Errorw("failed to encode export workbook", "error", err)
		return nil, err
	}

	filename := "tickets_" + time.Now().UTC().Format("20060102_150405") + ".xlsx"

	uc.logger.Infow("tickets exported",
		"count", len(tickets), "username", query.Principal.Username)

	return &ExportTicketsResult{
		Content:  content,
		Filename: filename,
		Count:    len(tickets),
	}, nil
}
