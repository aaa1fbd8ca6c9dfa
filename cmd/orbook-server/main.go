package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/orbook/orbook/internal/calendar"
	"github.com/orbook/orbook/internal/catalog"
	"github.com/orbook/orbook/internal/config"
	"github.com/orbook/orbook/internal/domain/conference"
	"github.com/orbook/orbook/internal/domain/identity"
	"github.com/orbook/orbook/internal/domain/notification"
	"github.com/orbook/orbook/internal/domain/patient"
	"github.com/orbook/orbook/internal/domain/roster"
	"github.com/orbook/orbook/internal/domain/schedule"
	"github.com/orbook/orbook/internal/domain/task"
	"github.com/orbook/orbook/internal/domain/usage"
	"github.com/orbook/orbook/internal/platform/auth"
	"github.com/orbook/orbook/internal/platform/db"
	"github.com/orbook/orbook/internal/platform/mailer"
	"github.com/orbook/orbook/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbook-server",
		Short: "OR scheduling and patient intake API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Outbound mail. Without calendar sync everything is logged and dropped.
	var mail mailer.Sender
	if cfg.CalendarSyncEnabled && cfg.MailEnabled() {
		mail = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPServer,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.EmailFrom,
		}, logger)
		logger.Info().Str("smtp_server", cfg.SMTPServer).Msg("calendar sync enabled")
	} else {
		mail = mailer.NewNoopSender(logger)
	}

	issuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret),
		time.Duration(cfg.TokenExpiryMinutes)*time.Minute)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	apiV1 := e.Group("/api/v1")
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// -- Domain wiring --

	cat := catalog.Default()

	userRepo := identity.NewUserRepoPG(pool)
	identitySvc := identity.NewService(userRepo, issuer)
	identityHandler := identity.NewHandler(identitySvc)

	notifRepo := notification.NewRepoPG(pool)
	notifSvc := notification.NewService(notifRepo, mail, logger)
	notifHandler := notification.NewHandler(notifSvc)

	residentRepo := roster.NewResidentRepoPG(pool)
	attendingRepo := roster.NewAttendingRepoPG(pool)
	rosterSvc := roster.NewService(residentRepo, attendingRepo)
	rosterHandler := roster.NewHandler(rosterSvc)

	usageRepo := usage.NewRepoPG(pool)
	usageSvc := usage.NewService(usageRepo, cat)
	usageHandler := usage.NewHandler(usageSvc)

	scheduleRepo := schedule.NewRepoPG(pool)
	scheduleSvc := schedule.NewService(scheduleRepo, rosterSvc, notifSvc, mail, logger)
	scheduleHandler := schedule.NewHandler(scheduleSvc)

	patientRepo := patient.NewRepoPG(pool)
	patientSvc := patient.NewService(patientRepo, scheduleRepo, rosterSvc, notifSvc, usageSvc,
		time.Duration(cfg.AutoArchiveDelayHrs)*time.Hour, logger)
	patientHandler := patient.NewHandler(patientSvc)

	taskRepo := task.NewRepoPG(pool)
	taskSvc := task.NewService(taskRepo, notifSvc, logger)
	taskHandler := task.NewHandler(taskSvc)

	confRepo := conference.NewRepoPG(pool)
	confSvc := conference.NewService(confRepo, mail, logger)
	confHandler := conference.NewHandler(confSvc)

	calendarHandler := calendar.NewHandler(scheduleSvc, confSvc)
	catalogHandler := catalog.NewHandler(cat)

	// Public routes
	identityHandler.RegisterPublicRoutes(apiV1)

	// Authenticated routes
	protected := apiV1.Group("", auth.JWTMiddleware(issuer))
	identityHandler.RegisterRoutes(protected)
	patientHandler.RegisterRoutes(protected)
	scheduleHandler.RegisterRoutes(protected)
	taskHandler.RegisterRoutes(protected)
	confHandler.RegisterRoutes(protected)
	rosterHandler.RegisterRoutes(protected)
	notifHandler.RegisterRoutes(protected)
	usageHandler.RegisterRoutes(protected)
	calendarHandler.RegisterRoutes(protected)
	catalogHandler.RegisterRoutes(protected)

	// Sweep completed cases into the archive on an hourly cadence.
	sweepCtx, sweepCancel := context.WithCancel(ctx)
	defer sweepCancel()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				count, err := patientSvc.AutoArchive(sweepCtx)
				if err != nil {
					logger.Error().Err(err).Msg("auto-archive sweep failed")
					continue
				}
				if count > 0 {
					logger.Info().Int("archived", count).Msg("auto-archive sweep complete")
				}
			}
		}
	}()

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
