package staff

import (
	"context"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/domain/staff"
	"github.com/aigym/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles employee authentication
type AuthService struct {
	employeeRepo staff.EmployeeRepository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	employeeRepo staff.EmployeeRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		logger:       logger,
	}
}

// Login authenticates an employee and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	s.logger.Info("Login attempt", zap.String("username", req.Username))

	employee, err := s.employeeRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("Employee not found during login", zap.String("username", req.Username))
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid username or password")
	}

	if employee.PasswordHash == "" {
		s.logger.Warn("Login attempt for employee without credentials", zap.String("username", req.Username))
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid username or password")
	}

	if employee.Status != "active" {
		s.logger.Warn("Login attempt for inactive employee",
			zap.String("username", req.Username),
			zap.String("status", employee.Status))
		return nil, shared.NewDomainError(shared.CodeForbidden, "Account is not active")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Invalid password attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid username or password")
	}

	username := ""
	if employee.Username != nil {
		username = *employee.Username
	}
	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		EmployeeID:   employee.ID,
		Username:     username,
		EmployeeType: string(employee.EmployeeType),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Failed to generate authentication tokens")
	}

	s.logger.Info("Employee logged in",
		zap.String("username", req.Username),
		zap.String("employee_id", employee.ID.String()),
		zap.String("employee_type", string(employee.EmployeeType)))

	return &LoginResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		Employee:              ToEmployeeResponse(employee),
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. Employee
// type is re-read from the store so access changes apply on refresh.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*RefreshResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid refresh token")
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Failed to check token blacklist", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Failed to validate session")
	}
	if blacklisted {
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Session has been revoked")
	}

	employeeID, err := claims.GetEmployeeUUID()
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid refresh token")
	}

	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		s.logger.Warn("Employee not found during token refresh", zap.String("employee_id", employeeID.String()))
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Employee not found")
	}

	if employee.Status != "active" {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Account is no longer active")
	}

	username := ""
	if employee.Username != nil {
		username = *employee.Username
	}
	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, username, string(employee.EmployeeType))
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Failed to refresh token")
	}

	// The used refresh token is single-use
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to blacklist used refresh token", zap.Error(err))
	}

	return &RefreshResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}, nil
}

// Logout revokes the presented access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtService.ValidateAccessToken(accessToken)
	if err != nil {
		// An invalid or expired token has nothing left to revoke
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to blacklist token on logout", zap.Error(err))
		return shared.NewDomainError(shared.CodeInternal, "Failed to revoke session")
	}

	s.logger.Info("Employee logged out", zap.String("employee_id", claims.EmployeeID))
	return nil
}
