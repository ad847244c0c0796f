package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runMaintenanceRouter(secureGroup *echo.Group, requestCtrl *controllers.MaintenanceRequestController) {
	maintenance := secureGroup.Group("/maintenance")
	{
		maintenance.GET("/requests", requestCtrl.GetRequests)
		maintenance.GET("/requests/:id", requestCtrl.FindRequest)
		maintenance.POST("/requests", requestCtrl.CreateRequest)
		maintenance.PATCH("/requests/:id", requestCtrl.UpdateRequestStatus)
		maintenance.GET("/dropdown/equipment", requestCtrl.GetEquipmentDropdown)
	}

	// старый адрес формы создания заявки
	secureGroup.POST("/requests", requestCtrl.CreateRequest)
}
