package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/ai"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/channel"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/config"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/conversation"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/dispatch"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/handler"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/middleware"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/reminder"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/repository"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/router"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/scheduler"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	reminders  *reminder.Scheduler
	service    *service.ReservationService
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"frontdesk",
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
	bookingRepo := repository.NewBookingRepo(a.db)
	businessRepo := repository.NewBusinessRepo(a.db)
	customerRepo := repository.NewCustomerRepo(a.db)
	conversationRepo := repository.NewConversationRepo(a.db)
	supportRepo := repository.NewSupportRepo(a.db)

	telegram, err := channel.NewTelegramChannel(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init telegram channel: %w", err)
	}
	whatsapp := channel.NewWhatsAppChannel(
		a.cfg.WhatsApp.AccountSID,
		a.cfg.WhatsApp.AuthToken,
		a.cfg.WhatsApp.From,
		a.log,
	)

	channels := map[domain.ChannelKind]ports.Channel{
		domain.ChannelTelegram: telegram,
		domain.ChannelWhatsApp: whatsapp,
	}

	// The reminder scheduler delivers through the reservation service, which
	// in turn schedules through the reminder scheduler. The closure breaks
	// the cycle: it only runs once a timer fires, long after wiring is done.
	a.reminders = reminder.NewScheduler(func(w reminder.Window, p domain.ReminderPayload) {
		a.service.DeliverReminder(string(w), p)
	}, a.log)

	a.service = service.NewReservationService(
		bookingRepo,
		businessRepo,
		customerRepo,
		a.reminders,
		channels,
		a.log,
	)
	supportService := service.NewSupportService(supportRepo, a.log)

	machine := conversation.NewMachine(a.service, supportService, telegram, a.log)

	aiClient := ai.NewClient(
		a.cfg.AI.BaseURL,
		a.cfg.AI.APIKey,
		a.cfg.AI.Model,
		a.cfg.AI.Timeout,
		a.log,
	)

	orchestrator := dispatch.NewOrchestrator(
		machine,
		a.service,
		supportService,
		customerRepo,
		conversationRepo,
		aiClient,
		channels,
		a.cfg.AI.Timeout,
		a.log,
	)

	a.scheduler = scheduler.New(a.service, a.cfg.Scheduler.Spec, a.log)

	h := handler.NewHandler(a.service, supportService, orchestrator, telegram)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
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

	if err := a.service.RestoreReminders(ctx); err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "restoring reminders",
			logger.Any("error", err),
		)
	}

	if err := a.scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
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

	a.scheduler.Stop()
	a.reminders.Stop()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "schedulers stopped")

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
