package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var equipmentColumns = []string{
	"e.id", "e.name", "e.serial_number", "e.category", "e.location", "e.is_usable",
	"e.maintenance_team_id", "e.assigned_technician_id", "e.last_service_date",
	"e.created_at", "e.updated_at",
	"t.id", "t.name",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter entities.EquipmentFilter) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	GetUsableEquipments(ctx context.Context) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, entity *entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, entity *entities.Equipment) error
	DeleteEquipment(ctx context.Context, id uint64) error
	MarkScrappedInTx(ctx context.Context, tx pgx.Tx, id uint64) error
	MarkServicedInTx(ctx context.Context, tx pgx.Tx, id uint64, at time.Time) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

// openRequestCountColumn - число заявок в работе по оборудованию.
// Подзапрос собирается с плейсхолдерами "?", нумерует их внешний запрос.
func openRequestCountColumn() sq.Sqlizer {
	sub := sq.Select("COUNT(*)").
		From("requests r").
		Where("r.equipment_id = e.id").
		Where(sq.Eq{"r.status::text": constants.OpenStatuses})
	return sq.Alias(sub, "request_count")
}

func equipmentSelectBuilder() sq.SelectBuilder {
	return psql.Select(equipmentColumns...).
		Column(openRequestCountColumn()).
		From("equipment e").
		LeftJoin("teams t ON t.id = e.maintenance_team_id")
}

func buildEquipmentListQuery(filter entities.EquipmentFilter) sq.SelectBuilder {
	b := equipmentSelectBuilder()

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"e.name": pattern},
			sq.ILike{"e.serial_number": pattern},
			sq.ILike{"e.category": pattern},
			sq.ILike{"e.location": pattern},
		})
	}
	if filter.Category != "" {
		b = b.Where(sq.Eq{"e.category": filter.Category})
	}
	if filter.IsUsable != nil {
		b = b.Where(sq.Eq{"e.is_usable": *filter.IsUsable})
	}
	if filter.MaintenanceTeamID != nil {
		b = b.Where(sq.Eq{"e.maintenance_team_id": *filter.MaintenanceTeamID})
	}

	b = b.OrderBy("e.id ASC")
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		b = b.Offset(filter.Offset)
	}
	return b
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var (
		e        entities.Equipment
		teamID   *uint64
		teamName *string
	)
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Category, &e.Location, &e.IsUsable,
		&e.MaintenanceTeamID, &e.AssignedTechnicianID, &e.LastServiceDate,
		&e.CreatedAt, &e.UpdatedAt,
		&teamID, &teamName,
		&e.RequestCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if teamID != nil && teamName != nil {
		e.Team = &entities.Team{ID: *teamID, Name: *teamName}
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter entities.EquipmentFilter) ([]entities.Equipment, error) {
	query, args, err := buildEquipmentListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса оборудования: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса оборудования: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return findEquipment(ctx, r.storage, id)
}

func (r *EquipmentRepository) FindEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return findEquipment(ctx, tx, id)
}

func findEquipment(ctx context.Context, q querier, id uint64) (*entities.Equipment, error) {
	query, args, err := equipmentSelectBuilder().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(q.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) GetUsableEquipments(ctx context.Context) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT id, name, serial_number FROM equipment WHERE is_usable = TRUE ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса списка оборудования: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.SerialNumber); err != nil {
			return nil, err
		}
		e.IsUsable = true
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, entity *entities.Equipment) (uint64, error) {
	query, args, err := psql.Insert("equipment").
		Columns("name", "serial_number", "category", "location", "maintenance_team_id", "assigned_technician_id").
		Values(entity.Name, entity.SerialNumber, entity.Category, entity.Location, entity.MaintenanceTeamID, entity.AssignedTechnicianID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, r.mapWriteError(err, entity)
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, entity *entities.Equipment) error {
	query, args, err := psql.Update("equipment").
		SetMap(map[string]interface{}{
			"name":                   entity.Name,
			"serial_number":          entity.SerialNumber,
			"category":               entity.Category,
			"location":               entity.Location,
			"maintenance_team_id":    entity.MaintenanceTeamID,
			"assigned_technician_id": entity.AssignedTechnicianID,
			"updated_at":             sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": entity.ID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return r.mapWriteError(err, entity)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEquipment не удаляет оборудование, на которое ссылаются заявки.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("equipment has maintenance requests: %w", apperrors.ErrConflict)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) MarkScrappedInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	tag, err := tx.Exec(ctx, "UPDATE equipment SET is_usable = FALSE, updated_at = now() WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) MarkServicedInTx(ctx context.Context, tx pgx.Tx, id uint64, at time.Time) error {
	tag, err := tx.Exec(ctx, "UPDATE equipment SET last_service_date = $1, updated_at = now() WHERE id = $2", at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) mapWriteError(err error, entity *entities.Equipment) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("serial number %q already exists: %w", entity.SerialNumber, apperrors.ErrConflict)
	case isForeignKeyViolation(err):
		return fmt.Errorf("maintenance team or technician does not exist: %w", apperrors.ErrBadRequest)
	}
	r.logger.Error("ошибка записи оборудования", zap.Uint64("id", entity.ID), zap.Error(err))
	return err
}
