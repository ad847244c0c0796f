package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(secureGroup *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	secureGroup.GET("/equipment", equipmentCtrl.GetEquipments)
	secureGroup.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	secureGroup.GET("/equipment/:id/requests", equipmentCtrl.GetEquipmentRequests)
	secureGroup.POST("/equipment", equipmentCtrl.CreateEquipment)
	secureGroup.PATCH("/equipment/:id", equipmentCtrl.UpdateEquipment)
	secureGroup.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
}
