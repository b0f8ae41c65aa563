package app

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"homewatt/api"
	"homewatt/internal/config"
	"homewatt/internal/db"
	"homewatt/internal/handlers"
	"homewatt/internal/logger"
	"homewatt/internal/service"
)

type App struct {
	cfg    *config.Config
	conn   *gorm.DB
	server *http.Server
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Initialize() error {
	conn, err := db.Open(a.cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	a.conn = conn

	t := a.cfg.Tariff()
	estimateService := service.NewEstimateService(t)
	weekService := service.NewWeekService(
		db.NewSessionRepository(conn),
		db.NewDayRepository(conn),
		t,
	)

	estimateHandler := handlers.NewEstimateHandler(estimateService)
	sessionHandler := handlers.NewSessionHandler(weekService)

	router := api.SetupRouter(estimateHandler, sessionHandler)
	a.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.Port),
		Handler: router,
	}
	return nil
}

func (a *App) Start() error {
	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error: %v", err)
		}
	}()

	logger.Info("Server started on port %d (rate %.2f/kWh)", a.cfg.Port, a.cfg.Tariff().RatePerKWh)
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	if a.conn != nil {
		if sqlDB, err := a.conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	logger.Info("Application stopped gracefully")
	return nil
}
