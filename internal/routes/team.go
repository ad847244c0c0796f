package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTeamRouter(secureGroup *echo.Group, teamCtrl *controllers.TeamController) {
	secureGroup.GET("/teams", teamCtrl.GetTeams)
}
