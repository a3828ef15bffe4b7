package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	importUsecases "faultdesk/internal/application/importer/usecases"
	"faultdesk/internal/application/ticket/usecases"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
	"faultdesk/internal/shared/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TransferHandler serves the spreadsheet import and export endpoints.
type TransferHandler struct {
	importUC      importUsecases.ImportTicketsExecutor
	exportUC      usecases.ExportTicketsExecutor
	maxFileSizeMB int
	logger        logger.Interface
}

func NewTransferHandler(
	importUC importUsecases.ImportTicketsExecutor,
	exportUC usecases.ExportTicketsExecutor,
	maxFileSizeMB int,
	log logger.Interface,
) *TransferHandler {
	return &TransferHandler{
		importUC:      importUC,
		exportUC:      exportUC,
		maxFileSizeMB: maxFileSizeMB,
		logger:        log,
	}
}

// ImportTickets handles POST /tickets/import
func (h *TransferHandler) ImportTickets(c *gin.Context) {
	p, _ := authorization.PrincipalFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("spreadsheet file is required", "multipart field \"file\""))
		return
	}

	maxBytes := int64(h.maxFileSizeMB) << 20
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is too large").
			WithField("file", "exceeds the upload size limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	summary, err := h.importUC.Execute(c.Request.Context(), importUsecases.ImportTicketsCommand{
		Principal: p,
		File:      file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Import finished", summary)
}

// ExportTickets handles GET /tickets/export
func (h *TransferHandler) ExportTickets(c *gin.Context) {
	p, _ := authorization.PrincipalFromContext(c)

	listQuery, err := parseListTicketsQuery(c, p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.exportUC.Execute(c.Request.Context(), usecases.ExportTicketsQuery{
		Principal: p,
		Status:    listQuery.Status,
		Priority:  listQuery.Priority,
		Command:   listQuery.Command,
		Unit:      listQuery.Unit,
		Search:    listQuery.Search,
		DateFrom:  listQuery.DateFrom,
		DateTo:    listQuery.DateTo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.Filename+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}
