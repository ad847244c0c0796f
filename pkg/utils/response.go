package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "gearguard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorBody - единый формат ошибки для клиента.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody - ответ без данных, только сообщение.
type MessageBody struct {
	Message string `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, code int) error {
	return ctx.JSON(code, body)
}

func MessageResponse(ctx echo.Context, message string, code int) error {
	return ctx.JSON(code, MessageBody{Message: message})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		} else {
			logger.Debug("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.NamedError("cause", httpErr.Err),
			)
		}
		return c.JSON(httpErr.Code, ErrorBody{Error: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, validationMessage(e))
		}
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: strings.Join(msgs, "; ")})
	}

	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: inputErr.Message})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return c.JSON(echoErr.Code, ErrorBody{Error: fmt.Sprint(echoErr.Message)})
	}

	if code, ok := sentinelStatus(err); ok {
		return c.JSON(code, ErrorBody{Error: err.Error()})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
}

func sentinelStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, true
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, true
	case errors.Is(err, apperrors.ErrAccountLocked):
		return http.StatusTooManyRequests, true
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenRevoked),
		errors.Is(err, apperrors.ErrInvalidSigningMethod),
		errors.Is(err, apperrors.ErrUserIDNotFoundInContext):
		return http.StatusUnauthorized, true
	}
	return 0, false
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "eqfield":
		return fmt.Sprintf("%s does not match %s", e.Field(), e.Param())
	case "custom_email":
		return "please provide a valid email"
	case "request_type":
		return fmt.Sprintf("%s must be Corrective or Preventive", e.Field())
	case "request_status":
		return fmt.Sprintf("%s must be one of New, In Progress, Repaired, Scrap", e.Field())
	}
	return fmt.Sprintf("field '%s' failed '%s' check", e.Field(), e.Tag())
}
