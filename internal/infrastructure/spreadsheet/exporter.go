// Package spreadsheet handles xlsx encoding and decoding for the bulk
// import and export paths.
package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/shared/biztime"
)

const (
	exportSheetName  = "תקלות"
	exportTimeLayout = "02/01/2006 15:04"
)

// exportColumns defines header text and column width, in output order.
var exportColumns = []struct {
	header string
	width  float64
}{
	{"מספר תקלה", 12},
	{"נושא", 30},
	{"פיקוד", 15},
	{"יחידה", 15},
	{"עדיפות", 12},
	{"סטטוס", 12},
	{"תקלה חוזרת", 12},
	{"תיאור", 50},
	{"תאריך פתיחה", 18},
	{"תאריך סגירה", 18},
	{"טכנאי מטפל", 18},
}

var priorityLabels = map[vo.Priority]string{
	vo.PriorityNormal:      "רגילה",
	vo.PriorityUrgent:      "דחופה",
	vo.PriorityOperational: "מבצעית",
}

var statusLabels = map[vo.TicketStatus]string{
	vo.StatusOpen:       "פתוח",
	vo.StatusInProgress: "בטיפול",
	vo.StatusResolved:   "תוקן",
}

type TicketExporter struct{}

func NewTicketExporter() *TicketExporter {
	return &TicketExporter{}
}

// Export renders the tickets into an xlsx workbook with a right-to-left
// sheet and timestamps formatted in the business timezone.
func (e *TicketExporter) Export(tickets []*ticket.Ticket) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheetName)

	rtl := true
	if err := f.SetSheetView(exportSheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return nil, fmt.Errorf("failed to set sheet view: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range exportColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve column name: %w", err)
		}
		cell := fmt.Sprintf("%s1", name)
		if err := f.SetCellValue(exportSheetName, cell, col.header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(exportSheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
		if err := f.SetColWidth(exportSheetName, name, name, col.width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, t := range tickets {
		row := i + 2
		values := ticketRow(t)
		for j, value := range values {
			name, err := excelize.ColumnNumberToName(j + 1)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve column name: %w", err)
			}
			cell := fmt.Sprintf("%s%d", name, row)
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func ticketRow(t *ticket.Ticket) []interface{} {
	recurring := "לא"
	if t.IsRecurring() {
		recurring = "כן"
	}

	closeDate := ""
	if t.CloseDate() != nil {
		closeDate = biztime.FormatInBizTimezone(*t.CloseDate(), exportTimeLayout)
	}

	technician := ""
	if t.AssignedTechnician() != nil {
		technician = *t.AssignedTechnician()
	}

	return []interface{}{
		t.Number(),
		t.Subject(),
		t.Command(),
		t.Unit(),
		priorityLabels[t.Priority()],
		statusLabels[t.Status()],
		recurring,
		t.Description(),
		biztime.FormatInBizTimezone(t.OpenDate(), exportTimeLayout),
		closeDate,
		technician,
	}
}
