// Package middleware implements BND's bearer-token extraction: it decides
// which TOK kind an endpoint expects and rejects before any handler runs.
// Grounded on bookings-api's AuthMiddleware (internal/middleware/auth.go),
// generalized from its single realm to the passenger and operator session
// kinds. Boarding tokens are not checked here; BV verifies them itself.
package middleware

import (
	"errors"
	"strings"

	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/tokens"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PassengerAuth requires a valid passenger-session token and sets
// "passengerId" in the request context.
func PassengerAuth(tokenSvc *tokens.Service) gin.HandlerFunc {
	return authMiddleware(tokenSvc, tokens.KindPassengerSession, "passengerId")
}

// OperatorAuth requires a valid operator-session token and sets
// "operatorId" in the request context.
func OperatorAuth(tokenSvc *tokens.Service) gin.HandlerFunc {
	return authMiddleware(tokenSvc, tokens.KindOperatorSession, "operatorId")
}

func authMiddleware(tokenSvc *tokens.Service, kind tokens.Kind, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithAppError(c, domain.ErrMissingCredentials)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithAppError(c, domain.ErrMissingCredentials)
			return
		}

		claims, err := tokenSvc.Verify(parts[1], kind)
		if err != nil {
			switch {
			case errors.Is(err, tokens.ErrExpired):
				abortWithAppError(c, domain.ErrExpiredToken)
			default:
				abortWithAppError(c, domain.ErrInvalidToken)
			}
			return
		}

		c.Set(contextKey, claims.Subject)
		c.Next()
	}
}

func abortWithAppError(c *gin.Context, appErr *domain.AppError) {
	log.Warn().Str("path", c.Request.URL.Path).Str("code", appErr.Code).Msg("request rejected at auth boundary")
	c.JSON(appErr.Status, appErr)
	c.Abort()
}
