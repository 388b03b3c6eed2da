package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/lucasromanh/TiketeraValidator/internal/audit"
	"github.com/lucasromanh/TiketeraValidator/internal/config"
	"github.com/lucasromanh/TiketeraValidator/internal/connectivity"
	"github.com/lucasromanh/TiketeraValidator/internal/handler"
	"github.com/lucasromanh/TiketeraValidator/internal/middleware"
	"github.com/lucasromanh/TiketeraValidator/internal/notification"
	"github.com/lucasromanh/TiketeraValidator/internal/ratelimit"
	"github.com/lucasromanh/TiketeraValidator/internal/relay"
	"github.com/lucasromanh/TiketeraValidator/internal/repository"
	"github.com/lucasromanh/TiketeraValidator/internal/router"
	"github.com/lucasromanh/TiketeraValidator/internal/scheduler"
	"github.com/lucasromanh/TiketeraValidator/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	monitor    *connectivity.Monitor
	hub        *relay.Hub
	bridge     *relay.Bridge
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TiketeraValidator",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	ticketRepo := repository.NewTicketRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	a.hub = relay.NewHub(a.log)
	if a.cfg.Redis.Addr != "" {
		a.bridge = relay.NewBridge(a.cfg.Redis.Addr, a.cfg.Redis.Channel, a.log)
		a.hub.AttachBridge(a.bridge)
	}

	a.monitor = connectivity.NewMonitor(a.db.Master, a.cfg.Connectivity.Interval, a.log)

	alerter, err := notification.NewTelegramAlerter(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.AdminChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init alerter: %w", err)
	}

	governors := ratelimit.NewRegistry(a.cfg.Scanner.RateThreshold, a.cfg.Scanner.Cooldown)
	audits := audit.NewRegistry(a.cfg.Scanner.AuditCapacity)

	eventService := service.NewEventService(eventRepo, a.log)
	userService := service.NewUserService(userRepo)
	ticketService := service.NewTicketService(ticketRepo, eventRepo, userRepo, a.log)
	validationService := service.NewValidationService(
		ticketRepo,
		a.monitor,
		a.hub,
		alerter,
		governors,
		audits,
		a.log,
	)

	a.scheduler = scheduler.New(
		eventService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		validationService,
		eventService,
		ticketService,
		userService,
		a.cfg.Sync.Interval,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		a.hub.HandleWS,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)
	go a.monitor.Start(ctx)
	if a.bridge != nil {
		go a.bridge.Run(ctx, a.hub)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.bridge != nil {
		if err := a.bridge.Close(); err != nil {
			a.log.Error("close relay bridge", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
