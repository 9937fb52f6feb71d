package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/classroom-service/internal/services"
	"github.com/edustack/classroom-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	BaseHandler
	exportService services.ExportService
}

func NewReportHandler(exportService services.ExportService, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

// WorkspaceGradebook streams the workspace gradebook as an xlsx file
// @Summary Export workspace gradebook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path uint true "Workspace ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /workspaces/{id}/gradebook.xlsx [get]
func (h *ReportHandler) WorkspaceGradebook(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Exporting gradebook", "workspace_id", id)

	f, err := h.exportService.WorkspaceGradebook(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="gradebook-%d.xlsx"`, id))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		h.LogError(c, err, "Failed to stream gradebook")
	}
}
