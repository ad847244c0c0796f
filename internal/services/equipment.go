package services

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	GetEquipmentRequests(ctx context.Context, id uint64) ([]dto.RequestDTO, error)
	GetEquipmentOptions(ctx context.Context) ([]dto.EquipmentOptionDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, rawBody []byte) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, error) {
	ef := entities.EquipmentFilter{
		Search:   filter.Search,
		Category: filter.Get("category"),
		Limit:    uint64(filter.Limit),
		Offset:   uint64(filter.Offset),
	}

	if raw := filter.Get("is_usable"); raw != "" {
		usable, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apperrors.NewValidationError("filter[is_usable] must be true or false")
		}
		ef.IsUsable = &usable
	}
	if raw := filter.Get("maintenance_team_id"); raw != "" {
		teamID, err := utils.ParseIDParam(raw)
		if err != nil {
			return nil, apperrors.NewValidationError("filter[maintenance_team_id] must be a positive number")
		}
		ef.MaintenanceTeamID = &teamID
	}

	items, err := s.equipmentRepo.GetEquipments(ctx, ef)
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to fetch equipment list", err)
	}
	out := make([]dto.EquipmentDTO, 0, len(items))
	for i := range items {
		out = append(out, *equipmentToDTO(&items[i]))
	}
	return out, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	e, err := s.findEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	return equipmentToDTO(e), nil
}

// GetEquipmentRequests - все заявки по оборудованию, для карточки оборудования.
func (s *EquipmentService) GetEquipmentRequests(ctx context.Context, id uint64) ([]dto.RequestDTO, error) {
	if _, err := s.findEntity(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.requestRepo.GetRequests(ctx, entities.RequestFilter{EquipmentID: &id})
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to fetch requests", err)
	}
	out := make([]dto.RequestDTO, 0, len(items))
	for i := range items {
		out = append(out, *requestToDTO(&items[i]))
	}
	return out, nil
}

func (s *EquipmentService) GetEquipmentOptions(ctx context.Context) ([]dto.EquipmentOptionDTO, error) {
	items, err := s.equipmentRepo.GetUsableEquipments(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to fetch equipment", err)
	}
	out := make([]dto.EquipmentOptionDTO, 0, len(items))
	for _, e := range items {
		out = append(out, dto.EquipmentOptionDTO{ID: e.ID, Name: e.Name, SerialNumber: e.SerialNumber})
	}
	return out, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	entity := &entities.Equipment{
		Name:                 strings.TrimSpace(payload.Name),
		SerialNumber:         strings.TrimSpace(payload.SerialNumber),
		Category:             payload.Category,
		Location:             payload.Location,
		IsUsable:             true,
		MaintenanceTeamID:    payload.MaintenanceTeamID,
		AssignedTechnicianID: payload.AssignedTechnicianID,
	}
	if entity.Name == "" || entity.SerialNumber == "" {
		return nil, apperrors.NewValidationError("Name and Serial Number required")
	}

	id, err := s.equipmentRepo.CreateEquipment(ctx, entity)
	if err != nil {
		return nil, s.mapWriteError(err, "Creation failed")
	}

	s.logger.Info("Оборудование создано", zap.Uint64("equipmentID", id), zap.String("serial", entity.SerialNumber))
	return s.FindEquipment(ctx, id)
}

// UpdateEquipment применяет только поля, присутствующие в теле запроса.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, rawBody []byte) (*dto.EquipmentDTO, error) {
	entity, err := s.findEntity(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := utils.ApplyPatch(entity, payload, rawBody)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid request body")
	}
	if !changed {
		return equipmentToDTO(entity), nil
	}

	entity.Name = strings.TrimSpace(entity.Name)
	entity.SerialNumber = strings.TrimSpace(entity.SerialNumber)
	if entity.Name == "" || entity.SerialNumber == "" {
		return nil, apperrors.NewValidationError("Name and Serial Number required")
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, entity); err != nil {
		return nil, s.mapWriteError(err, "Update failed")
	}
	return s.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepo.DeleteEquipment(ctx, id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return apperrors.NewNotFoundError("Equipment not found")
		case errors.Is(err, apperrors.ErrConflict):
			return apperrors.NewConflictError(http.StatusConflict, "Equipment has maintenance requests and cannot be deleted")
		}
		return apperrors.NewStoreError("Delete failed", err)
	}
	s.logger.Info("Оборудование удалено", zap.Uint64("equipmentID", id))
	return nil
}

func (s *EquipmentService) findEntity(ctx context.Context, id uint64) (*entities.Equipment, error) {
	e, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Equipment not found")
		}
		return nil, apperrors.NewStoreError("Failed to fetch details", err)
	}
	return e, nil
}

func (s *EquipmentService) mapWriteError(err error, fallback string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewNotFoundError("Equipment not found")
	case errors.Is(err, apperrors.ErrConflict):
		return apperrors.NewConflictError(http.StatusConflict, "Serial Number must be unique")
	case errors.Is(err, apperrors.ErrBadRequest):
		return apperrors.NewValidationError("Maintenance team or technician does not exist")
	}
	return apperrors.NewStoreError(fallback, err)
}
