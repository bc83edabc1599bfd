package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dealshare/internal/cache"
	"dealshare/internal/config"
	"dealshare/internal/session"
	"dealshare/internal/web"
	"dealshare/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := web.NewRenderer("web/templates/*.tmpl")
	if err != nil {
		log.Fatal().Err(err).Msg("template init")
	}
	e.Renderer = renderer

	redisClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx); err != nil {
		// Anonymous browsing still works; logins will 500 until Redis is back.
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, sessions unavailable")
	}
	cancel()
	sessions := session.NewRedisStore(redisClient)

	apiClient := web.NewClient(cfg.APIBaseURL, cfg.APIKey)
	handlers := web.NewHandlers(apiClient, sessions, cfg.SessionSecret)

	web.Register(e, handlers, sessions, cfg.SessionSecret)

	addr := ":" + cfg.WebPort
	log.Info().Str("addr", addr).Str("api", cfg.APIBaseURL).Msg("web server starting")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
