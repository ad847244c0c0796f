package middleware

import (
	"context"
	"strings"

	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RevocationChecker отвечает, отозван ли токен через logout.
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	revocation RevocationChecker
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, revocation RevocationChecker, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		revocation: revocation,
		logger:     logger,
	}
}

// Auth проверяет Bearer-токен и кладёт AuthContext в контекст запроса.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			m.logger.Debug("AuthMiddleware: пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Debug("AuthMiddleware: неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Debug("AuthMiddleware: токен не прошёл проверку", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := c.Request().Context()
		if m.revocation != nil {
			revoked, err := m.revocation.IsTokenRevoked(ctx, claims.ID)
			if err != nil {
				m.logger.Error("AuthMiddleware: не удалось проверить отзыв токена", zap.Error(err))
				return utils.ErrorResponse(c, err, m.logger)
			}
			if revoked {
				return utils.ErrorResponse(c, apperrors.ErrTokenRevoked, m.logger)
			}
		}

		newCtx := utils.WithAuthContext(ctx, utils.AuthContext{UserID: claims.UserID, TokenID: claims.ID})
		c.SetRequest(c.Request().WithContext(newCtx))

		return next(c)
	}
}
