package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	HighRiskAssets(ctx context.Context, limit int) ([]dto.HighRiskAssetDTO, error)
	TeamPerformance(ctx context.Context) ([]dto.TeamPerformanceDTO, error)
}

type ReportService struct {
	repo   repositories.ReportRepositoryInterface
	cfg    *config.ReportConfig
	logger *zap.Logger
}

func NewReportService(repo repositories.ReportRepositoryInterface, cfg *config.ReportConfig, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{repo: repo, cfg: cfg, logger: logger}
}

// HighRiskAssets: limit <= 0 берёт значение по умолчанию, сверху ограничен.
func (s *ReportService) HighRiskAssets(ctx context.Context, limit int) ([]dto.HighRiskAssetDTO, error) {
	if limit <= 0 {
		limit = s.cfg.HighRiskLimit
	}
	if limit <= 0 {
		limit = constants.HighRiskDefaultLimit
	}
	if limit > constants.HighRiskMaxLimit {
		limit = constants.HighRiskMaxLimit
	}

	items, err := s.repo.GetHighRiskAssets(ctx, uint64(limit), s.cfg.IncludeIdleAssets)
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to build high-risk report", err)
	}

	out := make([]dto.HighRiskAssetDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.HighRiskAssetDTO{
			EquipmentID:   item.EquipmentID,
			Name:          item.Name,
			SerialNumber:  item.SerialNumber,
			IsUsable:      item.IsUsable,
			TotalRequests: item.TotalRequests,
			TotalDuration: item.TotalDuration,
		})
	}
	return out, nil
}

func (s *ReportService) TeamPerformance(ctx context.Context) ([]dto.TeamPerformanceDTO, error) {
	items, err := s.repo.GetTeamPerformance(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to build team performance report", err)
	}

	out := make([]dto.TeamPerformanceDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.TeamPerformanceDTO{
			TeamID:        item.TeamID,
			TeamName:      item.TeamName,
			RepairedCount: item.RepairedCount,
			TotalDowntime: item.TotalDowntime,
		})
	}
	return out, nil
}
