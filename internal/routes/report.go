package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController) {
	reports := secureGroup.Group("/reports")
	reports.GET("/high-risk", reportCtrl.GetHighRiskAssets)
	reports.GET("/team-performance", reportCtrl.GetTeamPerformance)
}

func runDashboardRouter(secureGroup *echo.Group, dashboardCtrl *controllers.DashboardController) {
	secureGroup.GET("/dashboard/summary", dashboardCtrl.GetSummary)
}
