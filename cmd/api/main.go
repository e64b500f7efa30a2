package main

import (
	"context"
	"time"

	httpadp "compass-backend/internal/adapter/http"
	mw "compass-backend/internal/adapter/middleware"
	"compass-backend/internal/adapter/repository/mysql"
	"compass-backend/internal/config"
	"compass-backend/internal/infrastructure/cache"
	"compass-backend/internal/infrastructure/db"
	"compass-backend/internal/logger"
	ucApplication "compass-backend/internal/usecase/application"
	ucAuth "compass-backend/internal/usecase/auth"
	ucLike "compass-backend/internal/usecase/like"
	ucTool "compass-backend/internal/usecase/tool"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		lg.Fatalw("invalid config", "error", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		lg.Fatalw("mysql connect failed", "error", err)
	}
	if err := db.Migrate(gdb); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		lg.Fatalw("redis connect failed", "error", err)
	}

	users := mysql.NewUserRepository(gdb)
	cats := mysql.NewCategoryRepository(gdb)
	tools := mysql.NewToolRepository(gdb)
	apps := mysql.NewApplicationRepository(gdb)
	likes := mysql.NewLikeRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	authUC := ucAuth.NewUsecase(users)
	appUC := ucApplication.NewUsecase(apps, users, cats, uow)
	toolUC := ucTool.NewUsecase(tools)
	likeUC := ucLike.NewUsecase(likes, tools, uow)

	if cfg.AdminPass != "" {
		if err := authUC.EnsureAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, cfg.AdminPass); err != nil {
			lg.Fatalw("admin seed failed", "error", err)
		}
		lg.Infow("ensured admin account", "email", cfg.AdminEmail)
	}

	sessions := mw.NewStore(rdb, time.Duration(cfg.SessionTTLSecs)*time.Second)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Static("/logos", cfg.LogoDir)

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Health:      httpadp.NewHandler(),
		Auth:        httpadp.NewAuthHandler(authUC, sessions),
		Tool:        httpadp.NewToolHandler(toolUC),
		Application: httpadp.NewApplicationHandler(appUC),
		Admin:       httpadp.NewAdminHandler(appUC),
		Like:        httpadp.NewLikeHandler(likeUC),
		Logo:        httpadp.NewLogoHandler(cfg.LogoDir),
	}, sessions)

	addr := ":" + cfg.AppPort
	lg.Infow("listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}
