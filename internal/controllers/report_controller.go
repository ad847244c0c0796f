package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
	now           func() time.Time
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger, now: time.Now}
}

func (c *ReportController) GetHighRiskAssets(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return utils.ErrorResponse(ctx, apperrors.NewValidationError("limit must be a non-negative number"), c.logger)
		}
		limit = n
	}

	data, err := c.reportService.HighRiskAssets(ctx.Request().Context(), limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if isXLSX(ctx) {
		rows := make([][]interface{}, 0, len(data))
		for i, item := range data {
			rows = append(rows, highRiskRow(i+1, item))
		}
		return c.respondWithXLSX(ctx, "high_risk", "High-risk assets", highRiskHeaders, rows)
	}
	return utils.SuccessResponse(ctx, data, http.StatusOK)
}

func (c *ReportController) GetTeamPerformance(ctx echo.Context) error {
	data, err := c.reportService.TeamPerformance(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if isXLSX(ctx) {
		rows := make([][]interface{}, 0, len(data))
		for _, item := range data {
			rows = append(rows, []interface{}{item.TeamID, item.TeamName, item.RepairedCount, item.TotalDowntime})
		}
		return c.respondWithXLSX(ctx, "team_performance", "Team performance", teamPerformanceHeaders, rows)
	}
	return utils.SuccessResponse(ctx, data, http.StatusOK)
}

func isXLSX(ctx echo.Context) bool {
	return strings.ToLower(ctx.QueryParam("format")) == constants.ReportFormatXLSX
}

var highRiskHeaders = []interface{}{
	"№", "Equipment ID", "Name", "Serial Number", "Usable", "Total Requests", "Total Duration (h)",
}

var teamPerformanceHeaders = []interface{}{
	"Team ID", "Team", "Repaired", "Total Downtime (h)",
}

func highRiskRow(n int, item dto.HighRiskAssetDTO) []interface{} {
	usable := "no"
	if item.IsUsable {
		usable = "yes"
	}
	return []interface{}{n, item.EquipmentID, item.Name, item.SerialNumber, usable, item.TotalRequests, item.TotalDuration}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, name, sheet string, headers []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewStoreError("Failed to build report", err), c.logger)
	}
	f.SetSheetRow(sheet, "A1", &headers)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheet, "A1", lastCol+"1", style)
	f.SetColWidth(sheet, "B", lastCol, 20)

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &rows[i])
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", name, c.now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
