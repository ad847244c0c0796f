package routes

import (
	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/users", authCtrl.GetUsers)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
		authGroup.POST("/logout", authCtrl.Logout, authMW.Auth)
	}
}
