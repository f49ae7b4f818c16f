package app

import (
	"database/sql"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-siteops/internal/attendance"
	"go-siteops/internal/auth"
	"go-siteops/internal/budget"
	"go-siteops/internal/employee"
	"go-siteops/internal/laborcost"
	"go-siteops/internal/material"
	"go-siteops/internal/messaging/kafka"
	"go-siteops/internal/notification"
	"go-siteops/internal/rbac"
	"go-siteops/internal/rbac/infra"
	"go-siteops/internal/role"
	"go-siteops/internal/shared/counter"
	"go-siteops/internal/site"
	"go-siteops/internal/wagerate"
	"go-siteops/internal/warning"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	siteRepo := site.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	wageRateRepo := wagerate.NewRepository(gormDB)
	laborRecordRepo := laborcost.NewRecordRepository(gormDB)
	materialRepo := material.NewRepository(gormDB)
	warningRepo := warning.NewRepository(gormDB)
	budgetRepo := budget.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo)
	roleService := role.NewService(db, roleRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	siteService := site.NewService(db, siteRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)

	wageProvider := wagerate.NewProvider(wageRateRepo, rdb)
	wageRateService := wagerate.NewServiceWithOutbox(db, wageRateRepo, outboxRepo, wageProvider)

	calculator := laborcost.NewCalculator(wageProvider, attendanceRepo)
	laborService := laborcost.NewServiceWithOutbox(db, laborRecordRepo, counterRepo, outboxRepo, calculator)

	materialService := material.NewService(db, materialRepo)
	warningService := warning.NewService(db, warningRepo)
	budgetService := budget.NewService(db, budgetRepo, laborRecordRepo, materialRepo)
	notificationService := notification.NewService(notificationRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	roleHandler := role.NewHandler(roleService)
	employeeHandler := employee.NewHandler(employeeService)
	siteHandler := site.NewHandler(siteService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	wageRateHandler := wagerate.NewHandler(wageRateService)
	laborHandler := laborcost.NewHandler(laborService)
	materialHandler := material.NewHandler(materialService)
	warningHandler := warning.NewHandler(warningService)
	budgetHandler := budget.NewHandler(budgetService)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		role.RegisterRoutes(api, roleHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		site.RegisterRoutes(api, siteHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		wagerate.RegisterRoutes(api, wageRateHandler, rbacService)
		laborcost.RegisterRoutes(api, laborHandler, rbacService, rdb)
		material.RegisterRoutes(api, materialHandler, rbacService)
		warning.RegisterRoutes(api, warningHandler, rbacService)
		budget.RegisterRoutes(api, budgetHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler)
	}

	return nil
}
