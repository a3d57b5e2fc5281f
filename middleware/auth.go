package middleware

import (
	"strings"
	"time"

	"fiber-lims/apperrors"
	"fiber-lims/config"
	"fiber-lims/database"
	"fiber-lims/logger"
	"fiber-lims/models"
	"fiber-lims/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthContext carries the verified identity for one request. It is
// built once by AuthMiddleware and never mutated afterwards.
type AuthContext struct {
	UserID    uint
	Email     string
	RoleID    *uint
	SessionID string
}

const authLocalKey = "auth"

// GetAuthContext returns the identity resolved for this request, or
// nil when the request never passed AuthMiddleware.
func GetAuthContext(ctx *fiber.Ctx) *AuthContext {
	auth, ok := ctx.Locals(authLocalKey).(*AuthContext)
	if !ok {
		return nil
	}
	return auth
}

func AuthMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing Authorization header",
		})
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid Authorization header format",
		})
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid token",
		})
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid user ID",
		})
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid session ID",
		})
	}

	email, _ := claims["email"].(string)

	auth := &AuthContext{
		UserID:    uint(userID),
		Email:     email,
		SessionID: sessionID,
	}
	if roleID, ok := claims["role_id"].(float64); ok && roleID > 0 {
		rid := uint(roleID)
		auth.RoleID = &rid
	}

	db, err := database.OpenMainDB()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to connect database",
		})
	}

	var userSession models.UserSession
	if err := db.Where("session_id = ? AND is_active = ? AND expires_at > ?",
		sessionID, true, time.Now()).First(&userSession).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid session",
		})
	}

	userSession.LastActivityAt = time.Now()
	if err := db.Save(&userSession).Error; err != nil {
		logger.Get().WithError(err).WithField("session_id", sessionID).
			Error("failed to touch session activity")
	}

	ctx.Locals(authLocalKey, auth)
	ctx.Locals("userID", userID)

	return ctx.Next()
}

// CheckPermission allows the request only when the user's role carries
// the named permission. Lookup failures other than "no permission"
// answer 500; everything else fails closed with 403.
func CheckPermission(requiredPermission string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetAuthContext(ctx)
		if auth == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Missing identity",
			})
		}

		db, err := database.OpenMainDB()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to connect database",
			})
		}

		allowed, err := services.NewAuthzService(db).HasPermission(auth.UserID, requiredPermission)
		if err != nil {
			logger.Get().WithError(err).WithField("permission", requiredPermission).
				Error("permission lookup failed")
			return ctx.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
				"message": "Failed to check permission",
			})
		}
		if !allowed {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: You do not have permission",
			})
		}

		return ctx.Next()
	}
}
