package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

type Loggers struct {
	Main      *zap.Logger
	Auth      *zap.Logger
	Equipment *zap.Logger
	Request   *zap.Logger
}

// NewLoggers раздаёт один логгер всем компонентам с полем component.
func NewLoggers(base *zap.Logger) *Loggers {
	return &Loggers{
		Main:      base,
		Auth:      base.With(zap.String("component", "auth")),
		Equipment: base.With(zap.String("component", "equipment")),
		Request:   base.With(zap.String("component", "request")),
	}
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, loggers.Auth)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	teamRepo := repositories.NewTeamRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, loggers.Equipment)
	requestRepo := repositories.NewRequestRepository(dbConn, loggers.Request)
	reportRepo := repositories.NewReportRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, loggers.Main)

	// --- 2. СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, loggers.Auth, &cfg.Auth)
	userService := services.NewUserService(userRepo, loggers.Auth)
	teamService := services.NewTeamService(teamRepo)
	equipmentService := services.NewEquipmentService(equipmentRepo, requestRepo, loggers.Equipment)
	requestService := services.NewRequestService(txManager, requestRepo, equipmentRepo, loggers.Request)
	reportService := services.NewReportService(reportRepo, &cfg.Report, loggers.Main)
	dashboardService := services.NewDashboardService(dashboardRepo, loggers.Main)

	// --- 3. КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, userService, loggers.Auth)
	teamCtrl := controllers.NewTeamController(teamService, loggers.Main)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, loggers.Equipment)
	requestCtrl := controllers.NewMaintenanceRequestController(requestService, equipmentService, loggers.Request)
	reportCtrl := controllers.NewReportController(reportService, loggers.Main)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, loggers.Main)

	// --- 4. РОУТЕРЫ ---
	authMW := middleware.NewAuthMiddleware(jwtSvc, authService, loggers.Auth)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authCtrl, authMW)
	runTeamRouter(secureGroup, teamCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl)
	runMaintenanceRouter(secureGroup, requestCtrl)
	runReportRouter(secureGroup, reportCtrl)
	runDashboardRouter(secureGroup, dashboardCtrl)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}
