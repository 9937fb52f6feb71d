package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/classroom-service/internal/auth"
	"github.com/edustack/classroom-service/internal/repositories"
)

// TokenAuthMiddleware authenticates requests from the session credential
// and resolves role permissions from the role table.
type TokenAuthMiddleware struct {
	tokens   *auth.TokenManager
	roleRepo repositories.RoleRepository
}

func NewTokenAuthMiddleware(tokens *auth.TokenManager, roleRepo repositories.RoleRepository) *TokenAuthMiddleware {
	return &TokenAuthMiddleware{
		tokens:   tokens,
		roleRepo: roleRepo,
	}
}

// AuthMiddleware verifies the credential in the Authorization header. The
// header carries the raw token; a missing header is unauthorized while a
// present-but-invalid one is a bad request.
func (m *TokenAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Access denied",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid token",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.AccountID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RequirePermission checks the caller's role against the permission table.
func (m *TokenAuthMiddleware) RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleName, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "user role not found in context",
			})
			c.Abort()
			return
		}

		role, err := m.roleRepo.Get(c.Request.Context(), roleName.(string))
		if err != nil {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: fmt.Sprintf("unknown role %q", roleName),
			})
			c.Abort()
			return
		}

		if !role.HasPermission(permission) {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: fmt.Sprintf("insufficient permissions, required: %s", permission),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole allows only the named roles through.
func (m *TokenAuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleName, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "user role not found in context",
			})
			c.Abort()
			return
		}

		for _, role := range roles {
			if roleName == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: fmt.Sprintf("insufficient permissions, required role: %v", roles),
		})
		c.Abort()
	}
}

// GetAccountIDFromContext extracts the authenticated account id.
func GetAccountIDFromContext(c *gin.Context) (uint, error) {
	accountID, exists := c.Get("user_id")
	if !exists {
		return 0, fmt.Errorf("account ID not found in context")
	}
	id, ok := accountID.(uint)
	if !ok {
		return 0, fmt.Errorf("invalid account ID type in context")
	}
	return id, nil
}

// GetRoleFromContext extracts the authenticated role name.
func GetRoleFromContext(c *gin.Context) (string, error) {
	role, exists := c.Get("user_role")
	if !exists {
		return "", fmt.Errorf("user role not found in context")
	}
	name, ok := role.(string)
	if !ok {
		return "", fmt.Errorf("invalid user role type in context")
	}
	return name, nil
}
