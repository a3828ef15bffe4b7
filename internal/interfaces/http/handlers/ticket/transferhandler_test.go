package ticket

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	importUsecases "faultdesk/internal/application/importer/usecases"
	"faultdesk/internal/application/ticket/usecases"
	"faultdesk/internal/interfaces/http/handlers/testutil"
	"faultdesk/internal/shared/errors"
)

type mockImportTicketsUC struct {
	summary *importUsecases.ImportSummary
	err     error
}

func (m *mockImportTicketsUC) Execute(_ context.Context, _ importUsecases.ImportTicketsCommand) (*importUsecases.ImportSummary, error) {
	return m.summary, m.err
}

type mockExportTicketsUC struct {
	result *usecases.ExportTicketsResult
	err    error
}

func (m *mockExportTicketsUC) Execute(_ context.Context, _ usecases.ExportTicketsQuery) (*usecases.ExportTicketsResult, error) {
	return m.result, m.err
}

func newUploadContext(t *testing.T, fieldName string, content []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, "tickets.xlsx")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/tickets/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.Request = req

	return c, w
}

func TestTransferHandler_ImportTickets_Success(t *testing.T) {
	mockUC := &mockImportTicketsUC{
		summary: &importUsecases.ImportSummary{
			TotalRows:   3,
			Imported:    3,
			SuccessRate: 100,
		},
	}
	handler := NewTransferHandler(mockUC, nil, 10, testutil.NewMockLogger())

	c, w := newUploadContext(t, "file", []byte("workbook bytes"))
	testutil.SetPrincipal(c, testutil.AdminPrincipal())

	handler.ImportTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestTransferHandler_ImportTickets_MissingFile(t *testing.T) {
	handler := NewTransferHandler(&mockImportTicketsUC{}, nil, 10, testutil.NewMockLogger())

	c, w := newUploadContext(t, "attachment", []byte("workbook bytes"))
	testutil.SetPrincipal(c, testutil.AdminPrincipal())

	handler.ImportTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransferHandler_ImportTickets_UseCaseError(t *testing.T) {
	handler := NewTransferHandler(
		&mockImportTicketsUC{err: errors.NewForbiddenError("viewers cannot import tickets")},
		nil, 10, testutil.NewMockLogger(),
	)

	c, w := newUploadContext(t, "file", []byte("workbook bytes"))
	testutil.SetPrincipal(c, testutil.TechnicianPrincipal("North Command", "Alpha Unit"))

	handler.ImportTickets(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTransferHandler_ExportTickets_Success(t *testing.T) {
	content := []byte{0x50, 0x4b, 0x03, 0x04}
	mockUC := &mockExportTicketsUC{
		result: &usecases.ExportTicketsResult{
			Content:  content,
			Filename: "tickets_20250316_120000.xlsx",
			Count:    2,
		},
	}
	handler := NewTransferHandler(nil, mockUC, 10, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/export", nil)
	testutil.SetPrincipal(c, testutil.AdminPrincipal())

	handler.ExportTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "tickets_20250316_120000.xlsx")
	assert.Equal(t, content, w.Body.Bytes())
}

func TestTransferHandler_ExportTickets_BadFilter(t *testing.T) {
	handler := NewTransferHandler(nil, &mockExportTicketsUC{}, 10, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/export", nil)
	testutil.SetPrincipal(c, testutil.AdminPrincipal())
	testutil.SetQueryParams(c, map[string]string{"dateTo": "bad-date"})

	handler.ExportTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
