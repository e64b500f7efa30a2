package http

import (
	"compass-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health      *Handler
	Auth        *AuthHandler
	Tool        *ToolHandler
	Application *ApplicationHandler
	Admin       *AdminHandler
	Like        *LikeHandler
	Logo        *LogoHandler
}

// RegisterRoutes mounts the API under /api. Session resolution runs on
// every route; RequireUser/RequireAdmin guard the mutating surfaces.
func RegisterRoutes(e *echo.Echo, h Handlers, sessions *middleware.Store) {
	e.Validator = NewValidator()
	e.Use(middleware.LoadSession(sessions))

	e.GET("/health", h.Health.Health)

	api := e.Group("/api")

	authg := api.Group("/auth")
	authg.POST("/signup", h.Auth.Signup)
	authg.POST("/login", h.Auth.Login)
	authg.POST("/logout", h.Auth.Logout)
	authg.GET("/me", h.Auth.Me)

	tools := api.Group("/tools")
	tools.GET("", h.Tool.List)
	tools.GET("/likes/my", h.Like.MyLikes, middleware.RequireUser)
	tools.POST("/logos", h.Logo.Upload, middleware.RequireUser)
	tools.POST("/applications", h.Application.Create, middleware.RequireUser)
	tools.GET("/applications/my", h.Application.My, middleware.RequireUser)
	tools.GET("/:id", h.Tool.Get)
	tools.GET("/:id/like/status", h.Like.Status)
	tools.POST("/:id/like", h.Like.Like, middleware.RequireUser)
	tools.DELETE("/:id/like", h.Like.Unlike, middleware.RequireUser)

	admin := api.Group("/admin", middleware.RequireAdmin)
	admin.GET("/applications", h.Admin.ListApplications)
	admin.PATCH("/applications/:id/status", h.Admin.UpdateStatus)
}
