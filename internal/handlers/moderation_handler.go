package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/classroom-service/internal/services"
	"github.com/edustack/classroom-service/internal/utils"
)

type ModerationHandler struct {
	BaseHandler
	moderationService services.ModerationService
}

func NewModerationHandler(moderationService services.ModerationService, logger utils.Logger) *ModerationHandler {
	return &ModerationHandler{
		BaseHandler:       NewBaseHandler(logger),
		moderationService: moderationService,
	}
}

// GetRules returns the active moderation rule set
// @Summary Get moderation rules
// @Tags moderation
// @Produce json
// @Success 200 {object} models.ModerationRuleSet
// @Router /moderation/rules [get]
func (h *ModerationHandler) GetRules(c *gin.Context) {
	ruleSet, err := h.moderationService.ActiveRules(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ruleSet)
}

// ReplaceRules swaps the active rule list
// @Summary Replace moderation rules
// @Tags moderation
// @Accept json
// @Produce json
// @Param rules body services.ModerationRulesRequest true "Rule list"
// @Success 200 {object} models.ModerationRuleSet
// @Failure 400 {object} ErrorResponse
// @Router /moderation/rules [put]
func (h *ModerationHandler) ReplaceRules(c *gin.Context) {
	h.LogRequest(c, "Replacing moderation rules")

	var req services.ModerationRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	ruleSet, err := h.moderationService.ReplaceRules(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ruleSet)
}

// FlagSubmission marks a submission as flagged
// @Summary Flag submission
// @Tags moderation
// @Produce json
// @Param id path uint true "Submission ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /moderation/submissions/{id}/flag [post]
func (h *ModerationHandler) FlagSubmission(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Flagging submission", "submission_id", id)

	if err := h.moderationService.FlagSubmission(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Submission flagged"})
}
