package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/classroom-service/internal/services"
	"github.com/edustack/classroom-service/internal/utils"
)

type WorkspaceHandler struct {
	BaseHandler
	workspaceService services.WorkspaceService
}

func NewWorkspaceHandler(workspaceService services.WorkspaceService, logger utils.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		BaseHandler:      NewBaseHandler(logger),
		workspaceService: workspaceService,
	}
}

// CreateWorkspace creates a workspace
// @Summary Create workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body services.WorkspaceCreateRequest true "Workspace data"
// @Success 201 {object} models.Workspace
// @Failure 400 {object} ErrorResponse
// @Router /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	h.LogRequest(c, "Creating workspace")

	var req services.WorkspaceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	workspace, err := h.workspaceService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workspace)
}

// ListWorkspaces returns every workspace
// @Summary List workspaces
// @Tags workspaces
// @Produce json
// @Success 200 {array} models.Workspace
// @Router /workspaces [get]
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	workspaces, err := h.workspaceService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

// ListByEducator returns the workspaces an educator owns
// @Summary List workspaces by educator
// @Tags workspaces
// @Produce json
// @Param id path uint true "Educator ID"
// @Success 200 {array} models.Workspace
// @Router /workspaces/{id} [get]
func (h *WorkspaceHandler) ListByEducator(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	workspaces, err := h.workspaceService.ListByEducator(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

// ListByStudent returns the workspaces a student is enrolled in
// @Summary List workspaces by student
// @Tags workspaces
// @Produce json
// @Param id path uint true "Student ID"
// @Success 200 {array} models.Workspace
// @Router /workspaces/student/{id} [get]
func (h *WorkspaceHandler) ListByStudent(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	workspaces, err := h.workspaceService.ListByStudent(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

// EnrollStudent adds a student to the workspace roster
// @Summary Enroll student
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path uint true "Workspace ID"
// @Param enrollment body services.EnrollStudentRequest true "Student to enroll"
// @Success 200 {object} models.Workspace
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /workspaces/{id} [patch]
func (h *WorkspaceHandler) EnrollStudent(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if req.StudentID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "student is required",
		})
		return
	}

	h.LogRequest(c, "Enrolling student", "workspace_id", id, "student_id", req.StudentID)

	workspace, err := h.workspaceService.EnrollStudent(c.Request.Context(), id, req.StudentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}
