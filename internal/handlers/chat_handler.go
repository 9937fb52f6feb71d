package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/classroom-service/internal/services"
	"github.com/edustack/classroom-service/internal/utils"
)

type ChatHandler struct {
	BaseHandler
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService, logger utils.Logger) *ChatHandler {
	return &ChatHandler{
		BaseHandler: NewBaseHandler(logger),
		chatService: chatService,
	}
}

// CreateChat runs one moderated chat turn
// @Summary Send chat message
// @Tags chat
// @Accept json
// @Produce json
// @Param chat body services.ChatRequest true "Chat message"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) CreateChat(c *gin.Context) {
	h.LogRequest(c, "Creating chat turn")

	var req services.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	message, err := h.chatService.CreateChat(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListChats returns every stored chat turn
// @Summary List chat messages
// @Tags chat
// @Produce json
// @Success 200 {array} models.ChatMessage
// @Router /chat [get]
func (h *ChatHandler) ListChats(c *gin.Context) {
	messages, err := h.chatService.ListChats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ListByStudent returns one student's chat history
// @Summary List chat messages by student
// @Tags chat
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} models.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Router /chat/student/{id} [get]
func (h *ChatHandler) ListByStudent(c *gin.Context) {
	studentID := h.parseIDParam(c, "id")
	if studentID == 0 {
		return
	}

	messages, err := h.chatService.ListChatsByStudent(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
