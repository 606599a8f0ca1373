package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/salgadostudio/booking-site/internal/auth"
	"github.com/salgadostudio/booking-site/internal/config"
	"github.com/salgadostudio/booking-site/internal/handler"
	"github.com/salgadostudio/booking-site/internal/logger"
	"github.com/salgadostudio/booking-site/internal/repository"
	"github.com/salgadostudio/booking-site/internal/router"
	"github.com/salgadostudio/booking-site/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.GelfAddr)
	defer logger.Log.Sync()

	// Storage must exist before the server accepts traffic.
	subRepo := repository.NewSubmissionRepo(cfg.DataDir)
	if err := subRepo.Init(); err != nil {
		logger.Log.Fatal("storage init failed", zap.Error(err))
	}

	sessions := auth.NewSessionStore(cfg.SessionTTL)

	// Services
	authSvc := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, cfg.SessionSecret, sessions)
	subSvc := service.NewSubmissionService(subRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc, cfg.SessionTTL, cfg.Production)
	bookingH := handler.NewBookingHandler(subSvc)
	adminH := handler.NewAdminHandler(subSvc)

	// Router
	r := router.New(cfg.SessionSecret, sessions, authH, bookingH, adminH, cfg.PublicDir)

	if cfg.UsesDefaultPassword() {
		logger.Log.Warn("ADMIN_PASSWORD is still the shipped default; set it before production use")
	}

	logger.Log.Info("booking site starting", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logger.Log.Fatal("server failed", zap.Error(err))
	}
}
