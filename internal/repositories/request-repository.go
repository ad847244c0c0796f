package repositories

import (
	"context"
	"errors"
	"fmt"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// enum-колонки читаем как text
const requestReturningFields = "id, subject, type::text, status::text, equipment_id, created_by, scheduled_date, duration, created_at"

var requestColumns = []string{
	"r.id", "r.subject", "r.type::text", "r.status::text", "r.equipment_id", "r.created_by",
	"r.scheduled_date", "r.duration", "r.created_at",
	"e.id", "e.name", "e.serial_number", "e.category", "e.location", "e.is_usable", "e.maintenance_team_id",
	"u.id", "u.name", "u.email",
	"t.id", "t.name",
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter entities.RequestFilter) ([]entities.Request, error)
	FindRequest(ctx context.Context, id uint64) (*entities.Request, error)
	CreateRequestInTx(ctx context.Context, tx pgx.Tx, entity *entities.Request) (*entities.Request, error)
	FindRequestForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Request, error)
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string, duration *int) (*entities.Request, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func requestSelectBuilder() sq.SelectBuilder {
	return psql.Select(requestColumns...).
		From("requests r").
		Join("equipment e ON e.id = r.equipment_id").
		LeftJoin("users u ON u.id = r.created_by").
		LeftJoin("teams t ON t.id = e.maintenance_team_id")
}

// buildRequestListQuery: новые сверху, при равном created_at - по id.
func buildRequestListQuery(filter entities.RequestFilter) sq.SelectBuilder {
	b := requestSelectBuilder()

	if filter.Status != "" {
		b = b.Where(sq.Eq{"r.status::text": filter.Status})
	}
	if filter.Type != "" {
		b = b.Where(sq.Eq{"r.type::text": filter.Type})
	}
	if filter.EquipmentID != nil {
		b = b.Where(sq.Eq{"r.equipment_id": *filter.EquipmentID})
	}
	if filter.CreatedBy != nil {
		b = b.Where(sq.Eq{"r.created_by": *filter.CreatedBy})
	}
	if filter.ScheduledFrom != nil {
		b = b.Where(sq.GtOrEq{"r.scheduled_date": *filter.ScheduledFrom})
	}
	if filter.ScheduledTo != nil {
		b = b.Where(sq.LtOrEq{"r.scheduled_date": *filter.ScheduledTo})
	}
	if filter.Search != "" {
		b = b.Where(sq.ILike{"r.subject": "%" + filter.Search + "%"})
	}

	b = b.OrderBy("r.created_at DESC", "r.id DESC")
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		b = b.Offset(filter.Offset)
	}
	return b
}

func scanExpandedRequest(row pgx.Row) (*entities.Request, error) {
	var (
		req       entities.Request
		eq        entities.Equipment
		userID    *uint64
		userName  *string
		userEmail *string
		teamID    *uint64
		teamName  *string
	)
	err := row.Scan(
		&req.ID, &req.Subject, &req.Type, &req.Status, &req.EquipmentID, &req.CreatedBy,
		&req.ScheduledDate, &req.Duration, &req.CreatedAt,
		&eq.ID, &eq.Name, &eq.SerialNumber, &eq.Category, &eq.Location, &eq.IsUsable, &eq.MaintenanceTeamID,
		&userID, &userName, &userEmail,
		&teamID, &teamName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	req.Equipment = &eq
	if userID != nil {
		req.Creator = &entities.User{ID: *userID}
		if userName != nil {
			req.Creator.Name = *userName
		}
		if userEmail != nil {
			req.Creator.Email = *userEmail
		}
	}
	if teamID != nil && teamName != nil {
		req.Team = &entities.Team{ID: *teamID, Name: *teamName}
	}
	return &req, nil
}

func scanRequest(row pgx.Row) (*entities.Request, error) {
	var req entities.Request
	err := row.Scan(
		&req.ID, &req.Subject, &req.Type, &req.Status, &req.EquipmentID, &req.CreatedBy,
		&req.ScheduledDate, &req.Duration, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter entities.RequestFilter) ([]entities.Request, error) {
	query, args, err := buildRequestListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса заявок: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса заявок: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Request, 0)
	for rows.Next() {
		req, err := scanExpandedRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *req)
	}
	return items, rows.Err()
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	query, args, err := requestSelectBuilder().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanExpandedRequest(r.storage.QueryRow(ctx, query, args...))
}

func (r *RequestRepository) CreateRequestInTx(ctx context.Context, tx pgx.Tx, entity *entities.Request) (*entities.Request, error) {
	query, args, err := psql.Insert("requests").
		Columns("subject", "type", "status", "equipment_id", "created_by", "scheduled_date", "duration").
		Values(
			entity.Subject,
			sq.Expr("?::request_type", entity.Type),
			sq.Expr("?::request_status", entity.Status),
			entity.EquipmentID,
			entity.CreatedBy,
			entity.ScheduledDate,
			entity.Duration,
		).
		Suffix("RETURNING " + requestReturningFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanRequest(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("equipment or creator does not exist: %w", apperrors.ErrBadRequest)
		}
		r.logger.Error("ошибка создания заявки", zap.Uint64("equipmentID", entity.EquipmentID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// FindRequestForUpdate блокирует строку заявки до конца транзакции.
func (r *RequestRepository) FindRequestForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Request, error) {
	query := fmt.Sprintf("SELECT %s FROM requests WHERE id = $1 FOR UPDATE", requestReturningFields)
	return scanRequest(tx.QueryRow(ctx, query, id))
}

// UpdateStatusInTx меняет статус; duration пишется, только если передан.
func (r *RequestRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string, duration *int) (*entities.Request, error) {
	b := psql.Update("requests").
		Set("status", sq.Expr("?::request_status", status)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + requestReturningFields)
	if duration != nil {
		b = b.Set("duration", *duration)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return scanRequest(tx.QueryRow(ctx, query, args...))
}
