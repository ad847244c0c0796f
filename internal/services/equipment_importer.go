package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ImportResult - итог загрузки оборудования из XLSX.
type ImportResult struct {
	Created int
	Skipped int
	Failed  int
}

type EquipImportService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewEquipImportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) *EquipImportService {
	return &EquipImportService{equipmentRepo: equipmentRepo, teamRepo: teamRepo, logger: logger}
}

type importColumns struct {
	name, serial, category, location, team int
}

// ImportFile ищет строку заголовков на любом листе и создаёт оборудование построчно.
// Дубликаты серийных номеров пропускаются, команды создаются по имени.
func (s *EquipImportService) ImportFile(ctx context.Context, filePath string) (*ImportResult, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	rows, cols, headerRow, err := findHeader(f)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Заголовки найдены", zap.String("file", filePath), zap.Int("row", headerRow+1))

	teamIDs := make(map[string]uint64)
	result := &ImportResult{}

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		name := cell(row, cols.name)
		serial := cell(row, cols.serial)
		if name == "" && serial == "" {
			continue
		}
		if name == "" || serial == "" {
			s.logger.Warn("Строка без названия или серийного номера", zap.Int("row", i+1))
			result.Failed++
			continue
		}

		entity := &entities.Equipment{
			Name:         name,
			SerialNumber: serial,
			Category:     optional(cell(row, cols.category)),
			Location:     optional(cell(row, cols.location)),
			IsUsable:     true,
		}

		if teamName := cell(row, cols.team); teamName != "" {
			teamID, ok := teamIDs[teamName]
			if !ok {
				team, err := s.teamRepo.CreateTeam(ctx, teamName)
				if err != nil {
					return result, err
				}
				teamID = team.ID
				teamIDs[teamName] = teamID
			}
			entity.MaintenanceTeamID = utils.ToPtr(teamID)
		}

		if _, err := s.equipmentRepo.CreateEquipment(ctx, entity); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				result.Skipped++
				continue
			}
			s.logger.Error("Ошибка импорта строки", zap.Int("row", i+1), zap.Error(err))
			result.Failed++
			continue
		}
		result.Created++
	}

	s.logger.Info("Импорт оборудования завершён",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func findHeader(f *excelize.File) ([][]string, importColumns, int, error) {
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, importColumns{}, -1, err
		}
		for rIdx, row := range rows {
			cols := importColumns{name: -1, serial: -1, category: -1, location: -1, team: -1}
			for cIdx, colName := range row {
				c := strings.ToLower(strings.TrimSpace(colName))
				switch {
				case strings.Contains(c, "team") || strings.Contains(c, "команд"):
					cols.team = cIdx
				case strings.Contains(c, "serial") || strings.Contains(c, "серийн"):
					cols.serial = cIdx
				case strings.Contains(c, "category") || strings.Contains(c, "категор"):
					cols.category = cIdx
				case strings.Contains(c, "location") || strings.Contains(c, "располож"):
					cols.location = cIdx
				case strings.Contains(c, "name") || strings.Contains(c, "назван"):
					cols.name = cIdx
				}
			}
			if cols.name != -1 && cols.serial != -1 {
				return rows, cols, rIdx, nil
			}
		}
	}
	return nil, importColumns{}, -1, fmt.Errorf("не найдена шапка таблицы: нужны колонки Name и Serial Number")
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
