package usecases

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/infrastructure/spreadsheet"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/biztime"
	"faultdesk/internal/shared/db"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

const maxErrorDetails = 10

// Spreadsheet columns are recognized by Hebrew or English header text.
var headerAliases = map[string]string{
	"מספר תקלה":     "number",
	"ticket number": "number",
	"נושא":         "subject",
	"subject":      "subject",
	"פיקוד":        "command",
	"command":      "command",
	"יחידה":        "unit",
	"unit":         "unit",
	"עדיפות":       "priority",
	"priority":     "priority",
	"סטטוס":        "status",
	"status":       "status",
	"תקלה חוזרת":   "recurring",
	"recurring":    "recurring",
	"תיאור":        "description",
	"description":  "description",
	"תאריך פתיחה":  "open date",
	"open date":    "open date",
	"תאריך סגירה":  "close date",
	"close date":   "close date",
	"טכנאי מטפל":   "technician",
	"technician":   "technician",
}

var priorityVocabulary = map[string]vo.Priority{
	"רגילה":       vo.PriorityNormal,
	"נמוכה":       vo.PriorityNormal,
	"normal":      vo.PriorityNormal,
	"low":         vo.PriorityNormal,
	"דחופה":       vo.PriorityUrgent,
	"גבוהה":       vo.PriorityUrgent,
	"urgent":      vo.PriorityUrgent,
	"high":        vo.PriorityUrgent,
	"מבצעית":      vo.PriorityOperational,
	"קריטית":      vo.PriorityOperational,
	"operational": vo.PriorityOperational,
	"critical":    vo.PriorityOperational,
}

var statusVocabulary = map[string]vo.TicketStatus{
	"פתוח":        vo.StatusOpen,
	"חדש":         vo.StatusOpen,
	"open":        vo.StatusOpen,
	"new":         vo.StatusOpen,
	"בטיפול":      vo.StatusInProgress,
	"in progress": vo.StatusInProgress,
	"in_progress": vo.StatusInProgress,
	"working":     vo.StatusInProgress,
	"תוקן":        vo.StatusResolved,
	"resolved":    vo.StatusResolved,
	"closed":      vo.StatusResolved,
	"fixed":       vo.StatusResolved,
}

var truthyValues = map[string]bool{
	"true": true,
	"yes":  true,
	"כן":   true,
	"1":    true,
	"נכון": true,
}

// dateLayouts are tried in order when parsing spreadsheet dates.
var dateLayouts = []string{
	"02/01/2006 15:04",
	"02/01/2006",
	"2006-01-02 15:04",
	"2006-01-02",
}

type ImportTicketsCommand struct {
	Principal authorization.Principal
	File      io.Reader
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportSummary struct {
	TotalRows    int        `json:"totalRows"`
	Imported     int        `json:"imported"`
	Errors       int        `json:"errors"`
	ErrorDetails []RowError `json:"errorDetails,omitempty"`
	SuccessRate  float64    `json:"successRate"`
}

type ImportTicketsExecutor interface {
	Execute(ctx context.Context, cmd ImportTicketsCommand) (*ImportSummary, error)
}

// RowReader decodes an uploaded workbook into header-keyed rows.
type RowReader interface {
	Read(src io.Reader) ([]spreadsheet.Row, error)
}

type ImportTicketsUseCase struct {
	ticketRepo ticket.Repository
	allocator  ticket.NumberAllocator
	txManager  *db.TransactionManager
	reader     RowReader
	logger     logger.Interface
}

func NewImportTicketsUseCase(
	ticketRepo ticket.Repository,
	allocator ticket.NumberAllocator,
	txManager *db.TransactionManager,
	reader RowReader,
	logger logger.Interface,
) *ImportTicketsUseCase {
	return &ImportTicketsUseCase{
		ticketRepo: ticketRepo,
		allocator:  allocator,
		txManager:  txManager,
		reader:     reader,
		logger:     logger,
	}
}

// Execute imports tickets row by row. A bad row is recorded and skipped; it
// never aborts the rows after it. Each imported row allocates its number
// from the same sequence as interactive creation, inside its own
// transaction, so a failed row leaves no trace.
func (uc *ImportTicketsUseCase) Execute(ctx context.Context, cmd ImportTicketsCommand) (*ImportSummary, error) {
	if !authorization.HasMinimumRole(cmd.Principal.Role, authorization.RoleTechnician) {
		return nil, errors.NewForbiddenError("insufficient role to import tickets")
	}

	rows, err := uc.reader.Read(cmd.File)
	if err != nil {
		return nil, errors.NewValidationError("failed to read spreadsheet", err.Error())
	}

	summary := &ImportSummary{TotalRows: len(rows)}
	var details []RowError

	for _, row := range rows {
		if err := uc.importRow(ctx, cmd.Principal, row); err != nil {
			summary.Errors++
			if len(details) < maxErrorDetails {
				details = append(details, RowError{Row: row.Index, Message: err.Error()})
			}
			uc.logger.Warnw("import row failed", "row", row.Index, "error", err)
			continue
		}
		summary.Imported++
	}

	summary.ErrorDetails = details
	if summary.TotalRows > 0 {
		summary.SuccessRate = float64(summary.Imported) / float64(summary.TotalRows) * 100
	}

	uc.logger.Infow("ticket import finished",
		"total", summary.TotalRows,
		"imported", summary.Imported,
		"errors", summary.Errors,
		"username", cmd.Principal.Username)

	return summary, nil
}

func (uc *ImportTicketsUseCase) importRow(ctx context.Context, p authorization.Principal, row spreadsheet.Row) error {
	cells := canonicalCells(row.Cells)

	description := cells["description"]
	if description == "" {
		return fmt.Errorf("description is missing")
	}

	command := cells["command"]
	unit := cells["unit"]
	if !p.Role.IsAdmin() {
		command = p.Command
	}
	if command == "" {
		command = p.Command
	}
	if unit == "" {
		unit = p.Unit
	}

	priority := vo.PriorityNormal
	if raw := cells["priority"]; raw != "" {
		mapped, ok := priorityVocabulary[strings.ToLower(raw)]
		if !ok {
			return fmt.Errorf("unknown priority %q", raw)
		}
		priority = mapped
	}

	status := vo.StatusOpen
	if raw := cells["status"]; raw != "" {
		mapped, ok := statusVocabulary[strings.ToLower(raw)]
		if !ok {
			return fmt.Errorf("unknown status %q", raw)
		}
		status = mapped
	}

	recurring := truthyValues[strings.ToLower(cells["recurring"])]

	t, err := ticket.NewTicket(
		cells["subject"],
		command,
		unit,
		priority,
		description,
		recurring,
		p.Username,
	)
	if err != nil {
		return err
	}
	t.MarkModifiedBy(p.Username)

	// An explicit, parseable ticket number is kept; a duplicate then fails
	// the row on save. Absent or unparseable numbers draw from the shared
	// sequence instead.
	if raw := cells["number"]; raw != "" {
		if number, convErr := strconv.Atoi(raw); convErr == nil && number > 0 {
			if err := t.SetNumber(number); err != nil {
				return err
			}
		}
	}

	// Unparseable or missing open dates fall back to the import moment.
	t.SetOpenDate(parseDateOrNow(cells["open date"]))

	if status != vo.StatusOpen {
		if err := t.ChangeStatus(status); err != nil {
			return err
		}
	}
	if raw := cells["close date"]; raw != "" && status.IsResolved() {
		if err := t.SetCloseDate(parseDateOrNow(raw)); err != nil {
			return err
		}
	}

	if technician := cells["technician"]; technician != "" {
		t.AssignTechnician(&technician)
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if t.Number() == 0 {
			number, err := uc.allocator.Next(txCtx)
			if err != nil {
				return err
			}
			if err := t.SetNumber(number); err != nil {
				return err
			}
		}
		return uc.ticketRepo.Save(txCtx, t)
	})
}

// canonicalCells folds Hebrew and English header variants onto one key set.
func canonicalCells(cells map[string]string) map[string]string {
	canonical := make(map[string]string, len(cells))
	for header, value := range cells {
		key, ok := headerAliases[header]
		if !ok {
			continue
		}
		if value != "" {
			canonical[key] = value
		}
	}
	return canonical
}

func parseDateOrNow(raw string) time.Time {
	if raw == "" {
		return biztime.NowUTC()
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, biztime.Location()); err == nil {
			return t.UTC()
		}
	}
	return biztime.NowUTC()
}
