package middleware

import (
	"net/http"
	"strings"

	"github.com/aigym/backend/internal/infrastructure/auth"
	"github.com/aigym/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Employee session context keys
const (
	ClaimsKey       = "jwt_claims"
	EmployeeIDKey   = "jwt_employee_id"
	UsernameKey     = "jwt_username"
	EmployeeTypeKey = "jwt_employee_type"
	AuthHeaderKey   = "Authorization"
	BearerPrefix    = "Bearer "
)

// EmployeeAuthConfig holds configuration for the employee auth middleware
type EmployeeAuthConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// TokenBlacklist is optional for checking revoked sessions
	TokenBlacklist auth.TokenBlacklist
	// Logger for middleware logging
	Logger *zap.Logger
}

// EmployeeAuth validates the bearer token of an employee session and
// stores its claims in the request context.
func EmployeeAuth(cfg EmployeeAuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			abortUnauthorized(c, cfg, err, "Token validation failed")
			return
		}

		if cfg.TokenBlacklist != nil {
			ctx := c.Request.Context()

			if claims.ID != "" {
				blacklisted, err := cfg.TokenBlacklist.IsBlacklisted(ctx, claims.ID)
				if err != nil {
					// Fail open so a blacklist outage does not lock everyone out
					if cfg.Logger != nil {
						cfg.Logger.Error("failed to check token blacklist",
							zap.String("jti", claims.ID),
							zap.Error(err))
					}
				} else if blacklisted {
					abortUnauthorized(c, cfg, auth.ErrTokenBlacklisted, "Token has been revoked")
					return
				}
			}

			invalidated, err := cfg.TokenBlacklist.IsEmployeeTokenInvalidated(ctx, claims.EmployeeID, claims.GetIssuedAtTime())
			if err != nil {
				if cfg.Logger != nil {
					cfg.Logger.Error("failed to check employee token invalidation",
						zap.String("employee_id", claims.EmployeeID),
						zap.Error(err))
				}
			} else if invalidated {
				abortUnauthorized(c, cfg, auth.ErrSessionInvalidated, "Session has been invalidated")
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmployeeIDKey, claims.EmployeeID)
		c.Set(UsernameKey, claims.Username)
		c.Set(EmployeeTypeKey, claims.EmployeeType)

		c.Next()
	}
}

// abortUnauthorized writes a 401 envelope and stops the chain
func abortUnauthorized(c *gin.Context, cfg EmployeeAuthConfig, err error, logMessage string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("employee authentication failed",
			zap.Error(err),
			zap.String("message", logMessage),
			zap.String("path", c.Request.URL.Path),
		)
	}

	message := "Authentication required"
	switch err {
	case auth.ErrExpiredToken:
		message = "Token has expired"
	case auth.ErrTokenBlacklisted:
		message = "Token has been revoked"
	case auth.ErrSessionInvalidated:
		message = "Session has been invalidated"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
}

// GetClaims retrieves the employee claims from gin.Context
func GetClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(ClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetEmployeeID retrieves the employee id from claims in context
func GetEmployeeID(c *gin.Context) string {
	if employeeID, exists := c.Get(EmployeeIDKey); exists {
		if id, ok := employeeID.(string); ok {
			return id
		}
	}
	return ""
}

// GetEmployeeType retrieves the employee type from claims in context
func GetEmployeeType(c *gin.Context) string {
	if employeeType, exists := c.Get(EmployeeTypeKey); exists {
		if t, ok := employeeType.(string); ok {
			return t
		}
	}
	return ""
}
