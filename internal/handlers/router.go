package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/classroom-service/internal/auth"
	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
	"github.com/edustack/classroom-service/internal/services"
	"github.com/edustack/classroom-service/internal/utils"
)

type HandlerManager struct {
	authHandler       *AuthHandler
	workspaceHandler  *WorkspaceHandler
	assignmentHandler *AssignmentHandler
	submissionHandler *SubmissionHandler
	reviewHandler     *ReviewHandler
	chatHandler       *ChatHandler
	moderationHandler *ModerationHandler
	reportHandler     *ReportHandler
	authMiddleware    *TokenAuthMiddleware

	healthCheck func(ctx context.Context) error
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenManager,
	roleRepo repositories.RoleRepository,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:       NewAuthHandler(serviceManager.Auth(), logger),
		workspaceHandler:  NewWorkspaceHandler(serviceManager.Workspace(), logger),
		assignmentHandler: NewAssignmentHandler(serviceManager.Assignment(), logger),
		submissionHandler: NewSubmissionHandler(serviceManager.Submission(), logger),
		reviewHandler:     NewReviewHandler(serviceManager.Review(), logger),
		chatHandler:       NewChatHandler(serviceManager.Chat(), logger),
		moderationHandler: NewModerationHandler(serviceManager.Moderation(), logger),
		reportHandler:     NewReportHandler(serviceManager.Export(), logger),
		authMiddleware:    NewTokenAuthMiddleware(tokens, roleRepo),
		healthCheck: serviceManager.HealthCheck,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/signup", hm.authHandler.Signup)
	v1.POST("/login", hm.authHandler.Login)

	// Everything below requires a credential
	authed := v1.Group("")
	authed.Use(hm.authMiddleware.AuthMiddleware())
	{
		authed.GET("/profile", hm.authHandler.Profile)

		users := authed.Group("/users")
		{
			users.GET("/students", hm.authHandler.ListStudents)
		}

		workspaces := authed.Group("/workspaces")
		{
			workspaces.POST("", hm.authMiddleware.RequireRole(models.RoleEducator, models.RoleAdmin), hm.workspaceHandler.CreateWorkspace)
			workspaces.GET("", hm.workspaceHandler.ListWorkspaces)
			workspaces.GET("/:id", hm.workspaceHandler.ListByEducator)
			workspaces.GET("/student/:id", hm.workspaceHandler.ListByStudent)
			workspaces.PATCH("/:id", hm.authMiddleware.RequireRole(models.RoleEducator, models.RoleAdmin), hm.workspaceHandler.EnrollStudent)
			workspaces.GET("/:id/gradebook.xlsx", hm.authMiddleware.RequireRole(models.RoleEducator, models.RoleAdmin), hm.reportHandler.WorkspaceGradebook)
		}

		assignments := authed.Group("/assignments")
		{
			assignments.POST("", hm.authMiddleware.RequireRole(models.RoleEducator, models.RoleAdmin), hm.assignmentHandler.CreateAssignment)
			assignments.GET("", hm.assignmentHandler.ListAssignments)
			// :id here is the workspace id, matching the frontend contract
			assignments.GET("/:id", hm.assignmentHandler.ListByWorkspace)
			assignments.PUT("/:id", hm.authMiddleware.RequireRole(models.RoleEducator, models.RoleAdmin), hm.assignmentHandler.UpdateAssignment)
			assignments.DELETE("/:id", hm.authMiddleware.RequireRole(models.RoleEducator, models.RoleAdmin), hm.assignmentHandler.DeleteAssignment)
		}

		submissions := authed.Group("/submissions")
		{
			submissions.POST("", hm.submissionHandler.CreateSubmission)
			submissions.GET("", hm.submissionHandler.ListSubmissions)
			submissions.GET("/:id/:student_id", hm.submissionHandler.GetByAssignmentAndStudent)
			submissions.PUT("/:id", hm.submissionHandler.UpdateSubmission)
		}

		reviews := authed.Group("/reviews")
		{
			reviews.POST("", hm.reviewHandler.CreateReview)
			reviews.GET("/:id", hm.reviewHandler.ListBySubmission)
			reviews.POST("/:id/vote/:direction", hm.reviewHandler.Vote)
		}

		chat := authed.Group("/chat")
		{
			chat.POST("", hm.chatHandler.CreateChat)
			chat.GET("", hm.chatHandler.ListChats)
			chat.GET("/student/:id", hm.chatHandler.ListByStudent)
		}

		moderation := authed.Group("/moderation")
		{
			moderation.GET("/rules", hm.moderationHandler.GetRules)
			moderation.PUT("/rules", hm.authMiddleware.RequirePermission(models.PermModerate), hm.moderationHandler.ReplaceRules)
			moderation.POST("/submissions/:id/flag", hm.authMiddleware.RequirePermission(models.PermModerate), hm.moderationHandler.FlagSubmission)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := hm.healthCheck(c.Request.Context()); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": "classroom-service",
		})
	})
}
