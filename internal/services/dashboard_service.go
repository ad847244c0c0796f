package services

import (
	"context"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

type DashboardService struct {
	repo   repositories.DashboardRepositoryInterface
	logger *zap.Logger
	now    func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{repo: repo, logger: logger, now: time.Now}
}

func (s *DashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	summary, err := s.repo.GetSummary(ctx, s.now())
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to load dashboard", err)
	}
	return &dto.DashboardSummaryDTO{
		CriticalEquipment:    summary.CriticalEquipment,
		OperationalEquipment: summary.OperationalEquipment,
		TotalEquipment:       summary.TotalEquipment,
		PendingRequests:      summary.PendingRequests,
		OverdueRequests:      summary.OverdueRequests,
	}, nil
}
