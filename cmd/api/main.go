package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dealshare/internal/config"
	"dealshare/internal/db"
	"dealshare/internal/handler"
	"dealshare/internal/model"
	"dealshare/internal/repository"
	"dealshare/internal/router"
	"dealshare/internal/service"
	"dealshare/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.DealUpVote{},
			&model.VoucherUpVote{},
			&model.UserDeal{},
			&model.UserVoucher{},
			&model.DealCategory{},
			&model.Deal{},
			&model.Voucher{},
			&model.Category{},
			&model.Merchant{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("failed to drop table (may not exist)")
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Merchant{},
		&model.Category{},
		&model.Deal{},
		&model.Voucher{},
		&model.DealCategory{},
		&model.UserDeal{},
		&model.UserVoucher{},
		&model.DealUpVote{},
		&model.VoucherUpVote{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	dealRepo := repository.NewDealRepository(gormDB)
	voucherRepo := repository.NewVoucherRepository(gormDB)
	merchantRepo := repository.NewMerchantRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	dealService := service.NewDealService(dealRepo, merchantRepo, categoryRepo)
	voucherService := service.NewVoucherService(voucherRepo, merchantRepo)
	catalogService := service.NewCatalogService(dealRepo, voucherRepo, merchantRepo, categoryRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(authService)
	dealHandler := handler.NewDealHandler(dealService)
	voucherHandler := handler.NewVoucherHandler(voucherService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// Register routes
	router.Register(e, cfg, userHandler, dealHandler, voucherHandler, catalogHandler)

	addr := ":" + cfg.APIPort
	log.Info().Str("addr", addr).Msg("api server starting")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
