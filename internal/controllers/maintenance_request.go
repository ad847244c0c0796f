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

type MaintenanceRequestController struct {
	requestService   services.RequestServiceInterface
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewMaintenanceRequestController(
	requestService services.RequestServiceInterface,
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
) *MaintenanceRequestController {
	return &MaintenanceRequestController{
		requestService:   requestService,
		equipmentService: equipmentService,
		logger:           logger,
	}
}

// GetRequests: фильтры из query (status, type, equipmentId, createdBy, scheduledFrom/To, search).
// Календарь профилактики использует type=Preventive и диапазон дат.
func (c *MaintenanceRequestController) GetRequests(ctx echo.Context) error {
	var filter dto.RequestFilterDTO
	if err := ctx.Bind(&filter); err != nil {
		c.logger.Debug("GetRequests: некорректные параметры", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("invalid query parameters"), c.logger)
	}
	if err := ctx.Validate(&filter); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.ListRequests(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetRequests: ошибка при получении заявок", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, http.StatusOK)
}

func (c *MaintenanceRequestController) FindRequest(ctx echo.Context) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.FindRequest(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, http.StatusOK)
}

// CreateRequest обслуживает и /maintenance/requests, и старый /requests.
func (c *MaintenanceRequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateRequest: ошибка при создании заявки", zap.Uint64("equipmentID", payload.EquipmentID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, http.StatusCreated)
}

func (c *MaintenanceRequestController) UpdateRequestStatus(ctx echo.Context) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateRequestStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequestStatus(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateRequestStatus: ошибка при смене статуса",
			zap.Uint64("id", id),
			zap.String("status", payload.Status),
			zap.Error(err),
		)
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, http.StatusOK)
}

// GetEquipmentDropdown - только исправное оборудование для формы заявки.
func (c *MaintenanceRequestController) GetEquipmentDropdown(ctx echo.Context) error {
	res, err := c.equipmentService.GetEquipmentOptions(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, http.StatusOK)
}

func (c *MaintenanceRequestController) parseID(ctx echo.Context) (uint64, error) {
	id, err := utils.ParseIDParam(ctx.Param("id"))
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "invalid request id", err, nil)
	}
	return id, nil
}
