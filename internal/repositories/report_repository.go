package repositories

import (
	"context"
	"fmt"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepositoryInterface interface {
	GetHighRiskAssets(ctx context.Context, limit uint64, includeIdle bool) ([]entities.HighRiskAsset, error)
	GetTeamPerformance(ctx context.Context) ([]entities.TeamPerformance, error)
}

type reportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

// buildHighRiskQuery: по каждому оборудованию число заявок и суммарная длительность.
// Оборудование без заявок попадает в выборку только при includeIdle.
func buildHighRiskQuery(limit uint64, includeIdle bool) sq.SelectBuilder {
	b := psql.Select(
		"e.id",
		"e.name",
		"e.serial_number",
		"e.is_usable",
		"COUNT(r.id) AS total_requests",
		"COALESCE(SUM(r.duration), 0) AS total_duration",
	).
		From("equipment e").
		LeftJoin("requests r ON r.equipment_id = e.id").
		GroupBy("e.id", "e.name", "e.serial_number", "e.is_usable")

	if !includeIdle {
		b = b.Having("COUNT(r.id) > 0")
	}

	return b.OrderBy("total_requests DESC", "e.id ASC").Limit(limit)
}

// buildTeamPerformanceQuery: команды без оборудования и заявок тоже попадают в отчёт с нулями.
func buildTeamPerformanceQuery() sq.SelectBuilder {
	return psql.Select("t.id", "t.name").
		Column("COUNT(r.id) FILTER (WHERE r.status::text = ?) AS repaired_count", constants.RequestStatusRepaired).
		Column("COALESCE(SUM(r.duration), 0) AS total_downtime").
		From("teams t").
		LeftJoin("equipment e ON e.maintenance_team_id = t.id").
		LeftJoin("requests r ON r.equipment_id = e.id").
		GroupBy("t.id", "t.name").
		OrderBy("t.id ASC")
}

func (r *reportRepository) GetHighRiskAssets(ctx context.Context, limit uint64, includeIdle bool) ([]entities.HighRiskAsset, error) {
	query, args, err := buildHighRiskQuery(limit, includeIdle).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса high-risk: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса high-risk: %w", err)
	}
	defer rows.Close()

	items := make([]entities.HighRiskAsset, 0)
	for rows.Next() {
		var item entities.HighRiskAsset
		if err := rows.Scan(&item.EquipmentID, &item.Name, &item.SerialNumber, &item.IsUsable,
			&item.TotalRequests, &item.TotalDuration); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *reportRepository) GetTeamPerformance(ctx context.Context) ([]entities.TeamPerformance, error) {
	query, args, err := buildTeamPerformanceQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса по командам: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса по командам: %w", err)
	}
	defer rows.Close()

	items := make([]entities.TeamPerformance, 0)
	for rows.Next() {
		var item entities.TeamPerformance
		if err := rows.Scan(&item.TeamID, &item.TeamName, &item.RepairedCount, &item.TotalDowntime); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
