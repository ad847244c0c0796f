package repositories

import (
	"context"
	"fmt"
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DashboardRepositoryInterface interface {
	GetSummary(ctx context.Context, now time.Time) (*entities.DashboardSummary, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

// buildSummaryQuery считает счётчики дашборда одним запросом.
// Просроченная заявка: ещё в работе и scheduled_date уже прошла.
func buildSummaryQuery(now time.Time) sq.SelectBuilder {
	return psql.Select().
		Column("(SELECT COUNT(*) FROM equipment WHERE is_usable = FALSE)").
		Column("(SELECT COUNT(*) FROM equipment WHERE is_usable = TRUE)").
		Column("(SELECT COUNT(*) FROM equipment)").
		Column("(SELECT COUNT(*) FROM requests WHERE status::text = ?)", constants.RequestStatusNew).
		Column("(SELECT COUNT(*) FROM requests WHERE status::text IN (?, ?) AND scheduled_date < ?)",
			constants.RequestStatusNew, constants.RequestStatusInProgress, now)
}

func (r *DashboardRepository) GetSummary(ctx context.Context, now time.Time) (*entities.DashboardSummary, error) {
	query, args, err := buildSummaryQuery(now).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса дашборда: %w", err)
	}

	var s entities.DashboardSummary
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&s.CriticalEquipment,
		&s.OperationalEquipment,
		&s.TotalEquipment,
		&s.PendingRequests,
		&s.OverdueRequests,
	)
	if err != nil {
		r.logger.Error("ошибка запроса дашборда", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
