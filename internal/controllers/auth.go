package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	userService services.UserServiceInterface,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	var payload dto.SignupDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Signup: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Debug("Signup: ошибка валидации", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	res, err := ctrl.authService.Signup(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, res, http.StatusCreated)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	res, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Info("Login: неудачная попытка входа", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, res, http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	if err := ctrl.authService.Logout(c.Request().Context()); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.MessageResponse(c, "Logged out", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	user, err := ctrl.userService.GetCurrentUser(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, user, http.StatusOK)
}

// GetUsers - список пользователей для назначения техников.
func (ctrl *AuthController) GetUsers(c echo.Context) error {
	users, err := ctrl.userService.GetUsers(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, users, http.StatusOK)
}
