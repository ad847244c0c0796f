package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const dateOnlyLayout = "2006-01-02"

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", dateOnlyLayout}

type RequestServiceInterface interface {
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequestStatus(ctx context.Context, id uint64, payload dto.UpdateRequestStatusDTO) (*dto.RequestDTO, error)
	ListRequests(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error)
}

type RequestService struct {
	txManager     repositories.TxManagerInterface
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
	now           func() time.Time
}

func NewRequestService(
	txManager repositories.TxManagerInterface,
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		txManager:     txManager,
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateRequest создаёт заявку в статусе New и подставляет команду оборудования.
// Поиск оборудования и вставка идут в одной транзакции.
func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	subject := strings.TrimSpace(payload.Subject)
	if subject == "" {
		return nil, apperrors.NewValidationError("subject is required")
	}

	reqType := payload.Type
	if reqType == "" {
		reqType = constants.RequestTypeCorrective
	}
	if !constants.IsValidRequestType(reqType) {
		return nil, apperrors.NewValidationError("type must be Corrective or Preventive")
	}

	var scheduled *time.Time
	if payload.ScheduledDate != nil && strings.TrimSpace(*payload.ScheduledDate) != "" {
		t, _, err := parseDate(*payload.ScheduledDate)
		if err != nil {
			return nil, apperrors.NewValidationError("scheduledDate must be a date (YYYY-MM-DD) or RFC3339 timestamp")
		}
		scheduled = &t
	}

	createdBy := payload.CreatedBy
	if createdBy == nil {
		if userID, err := utils.GetUserIDFromCtx(ctx); err == nil {
			createdBy = &userID
		}
	}

	logger := s.logger.With(zap.Uint64("equipmentID", payload.EquipmentID))

	var created *entities.Request
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipment, err := s.equipmentRepo.FindEquipmentInTx(ctx, tx, payload.EquipmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("Equipment not found")
			}
			return err
		}

		created, err = s.requestRepo.CreateRequestInTx(ctx, tx, &entities.Request{
			Subject:       subject,
			Type:          reqType,
			Status:        constants.RequestStatusNew,
			EquipmentID:   equipment.ID,
			CreatedBy:     createdBy,
			ScheduledDate: scheduled,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrBadRequest) {
				return apperrors.NewValidationError("createdBy does not reference an existing user")
			}
			return err
		}
		created.Equipment = equipment
		created.Team = equipment.Team
		return nil
	})
	if err != nil {
		return nil, s.wrapStoreError(err, "Creation failed")
	}

	logger.Info("Заявка создана", zap.Uint64("requestID", created.ID), zap.String("type", created.Type))
	return requestToDTO(created), nil
}

// UpdateRequestStatus переводит заявку в новый статус под блокировкой строки.
// Побочные эффекты на оборудовании применяются, только если передан equipmentId.
func (s *RequestService) UpdateRequestStatus(ctx context.Context, id uint64, payload dto.UpdateRequestStatusDTO) (*dto.RequestDTO, error) {
	if !constants.IsValidRequestStatus(payload.Status) {
		return nil, apperrors.NewValidationError("status must be one of New, In Progress, Repaired, Scrap")
	}
	if payload.Duration != nil && *payload.Duration < 0 {
		return nil, apperrors.NewValidationError("duration must be greater than or equal to 0")
	}

	logger := s.logger.With(zap.Uint64("requestID", id), zap.String("status", payload.Status))

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.requestRepo.FindRequestForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("Request not found")
			}
			return err
		}

		if !constants.CanTransition(current.Status, payload.Status) {
			return apperrors.NewInvalidInputError("cannot change status from %s to %s", current.Status, payload.Status)
		}
		if payload.EquipmentID != nil && *payload.EquipmentID != current.EquipmentID {
			return apperrors.NewValidationError("equipmentId does not match the request's equipment")
		}

		if _, err := s.requestRepo.UpdateStatusInTx(ctx, tx, id, payload.Status, payload.Duration); err != nil {
			return err
		}

		if payload.EquipmentID == nil {
			return nil
		}
		return s.applyEquipmentSideEffect(ctx, tx, *payload.EquipmentID, payload.Status)
	})
	if err != nil {
		return nil, s.wrapStoreError(err, "Update failed")
	}

	logger.Info("Статус заявки обновлён")
	return s.FindRequest(ctx, id)
}

func (s *RequestService) applyEquipmentSideEffect(ctx context.Context, tx pgx.Tx, equipmentID uint64, status string) error {
	var err error
	switch status {
	case constants.RequestStatusScrap:
		err = s.equipmentRepo.MarkScrappedInTx(ctx, tx, equipmentID)
	case constants.RequestStatusRepaired:
		err = s.equipmentRepo.MarkServicedInTx(ctx, tx, equipmentID, s.now())
	default:
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Equipment not found")
	}
	return err
}

func (s *RequestService) ListRequests(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, error) {
	rf, err := toRequestFilter(filter)
	if err != nil {
		return nil, err
	}

	items, err := s.requestRepo.GetRequests(ctx, rf)
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to fetch requests", err)
	}
	out := make([]dto.RequestDTO, 0, len(items))
	for i := range items {
		out = append(out, *requestToDTO(&items[i]))
	}
	return out, nil
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Request not found")
		}
		return nil, apperrors.NewStoreError("Failed to fetch request", err)
	}
	return requestToDTO(req), nil
}

func (s *RequestService) wrapStoreError(err error, message string) error {
	var httpErr *apperrors.HttpError
	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &httpErr) || errors.As(err, &inputErr) {
		return err
	}
	return apperrors.NewStoreError(message, err)
}

func toRequestFilter(f dto.RequestFilterDTO) (entities.RequestFilter, error) {
	rf := entities.RequestFilter{
		Status: f.Status,
		Type:   f.Type,
		Search: strings.TrimSpace(f.Search),
		Limit:  f.Limit,
		Offset: f.Offset,
	}
	if rf.Limit > utils.MaxLimit {
		rf.Limit = utils.MaxLimit
	}
	if f.Status != "" && !constants.IsValidRequestStatus(f.Status) {
		return rf, apperrors.NewValidationError("status must be one of New, In Progress, Repaired, Scrap")
	}
	if f.Type != "" && !constants.IsValidRequestType(f.Type) {
		return rf, apperrors.NewValidationError("type must be Corrective or Preventive")
	}
	if f.EquipmentID > 0 {
		id := f.EquipmentID
		rf.EquipmentID = &id
	}
	if f.CreatedBy > 0 {
		id := f.CreatedBy
		rf.CreatedBy = &id
	}
	if f.ScheduledFrom != "" {
		t, _, err := parseDate(f.ScheduledFrom)
		if err != nil {
			return rf, apperrors.NewValidationError("scheduledFrom must be a date (YYYY-MM-DD) or RFC3339 timestamp")
		}
		rf.ScheduledFrom = &t
	}
	if f.ScheduledTo != "" {
		t, dateOnly, err := parseDate(f.ScheduledTo)
		if err != nil {
			return rf, apperrors.NewValidationError("scheduledTo must be a date (YYYY-MM-DD) or RFC3339 timestamp")
		}
		// дата без времени включает весь день
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		rf.ScheduledTo = &t
	}
	return rf, nil
}

// parseDate понимает RFC3339 и короткие формы из HTML-форм; время без зоны считается UTC.
func parseDate(raw string) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, layout == dateOnlyLayout, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unsupported date format %q", raw)
}
