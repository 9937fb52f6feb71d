package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/classroom-service/internal/services"
	"github.com/edustack/classroom-service/internal/utils"
)

type ReviewHandler struct {
	BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService, logger utils.Logger) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   NewBaseHandler(logger),
		reviewService: reviewService,
	}
}

// CreateReview attaches a peer review to a submission
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body services.ReviewCreateRequest true "Review data"
// @Success 201 {object} models.Review
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	h.LogRequest(c, "Creating review")

	var req services.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListBySubmission returns the reviews for one submission
// @Summary List reviews by submission
// @Tags reviews
// @Produce json
// @Param id path uint true "Submission ID"
// @Success 200 {array} models.Review
// @Router /reviews/{id} [get]
func (h *ReviewHandler) ListBySubmission(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	reviews, err := h.reviewService.ListBySubmission(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Vote counts an upvote or downvote on a review
// @Summary Vote on review
// @Tags reviews
// @Produce json
// @Param id path uint true "Review ID"
// @Param direction path string true "up or down"
// @Success 200 {object} models.Review
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviews/{id}/vote/{direction} [post]
func (h *ReviewHandler) Vote(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	direction := c.Param("direction")
	if direction != "up" && direction != "down" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid vote direction",
			Details: "direction must be up or down",
		})
		return
	}

	review, err := h.reviewService.Vote(c.Request.Context(), id, direction == "up")
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}
