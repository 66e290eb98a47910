package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"warehouse-portal/auth"
	"warehouse-portal/domain"
	"warehouse-portal/internal"
	"warehouse-portal/metrics"
	"warehouse-portal/repositories"
	"warehouse-portal/runtime/workers"
	"warehouse-portal/server"
	"warehouse-portal/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Portal terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a shutdown signal arrives.
// Deferred cleanups run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	policy, err := services.PolicyFromName(config.ConsistencyPolicy)
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	metrics.InitAPIMetrics(prometheus.DefaultRegisterer)
	metrics.InitMessagingMetrics(prometheus.DefaultRegisterer)
	metrics.InitRuntimeMetrics(prometheus.DefaultRegisterer)

	// 3. Repositories & Services
	storageConfig := config.StorageConfig()
	contacts := repositories.NewContactRepository(db, storageConfig)
	groups := repositories.NewGroupRepository(db, storageConfig)
	messages := repositories.NewMessageRepository(db, storageConfig)
	receipts := repositories.NewReceiptRepository(db, storageConfig)
	licences := repositories.NewLicenceRepository(db, storageConfig)
	devices := repositories.NewDeviceRepository(db, storageConfig)

	clock := domain.Clock(domain.SystemClock)
	resolver := services.NewRecipientResolver(logger, groups, contacts, config.Scope())
	receiptService := services.NewReceiptService(logger, receipts, clock)
	groupService := services.NewGroupService(logger, groups, contacts, policy, config.Scope(), config.FallbackGroup)
	colleagueService := services.NewColleagueService(logger, contacts, groups, licences, config.EnforceLicenceSeats, clock)

	if config.Bootstrap() {
		// The first administrator never counts against licence seats
		bootstrapColleagues := services.NewColleagueService(logger, contacts, groups, licences, false, clock)
		if err = services.BootstrapAdmin(ctx, groupService, bootstrapColleagues,
			config.BootstrapTenant, config.BootstrapGroup, config.BootstrapAddress, config.BootstrapPassword); err != nil {
			return exitRuntime, err
		}
		logger.Info("Administrator provisioned", "tenant", config.BootstrapTenant, "address", config.BootstrapAddress)
	}

	portal := server.NewServer(logger, server.Services{
		Auth:       services.NewAuthService(contacts, auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration, clock)),
		Messages:   services.NewMessageService(logger, resolver, messages, receipts, policy, clock),
		Receipts:   receiptService,
		Views:      services.NewViewService(logger, receiptService, groups, contacts, messages),
		Groups:     groupService,
		Colleagues: colleagueService,
		Licences:   services.NewLicenceService(licences),
		Devices:    services.NewDeviceService(devices, contacts, clock),
	}, server.NewRateLimiter(rate.Limit(config.SendRateLimit), config.SendBurst))

	if !logger.Enabled(ctx, slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := &http.Server{Addr: config.Address(), Handler: portal.Router()}

	// 4. Supervision
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewHTTPServerWorker(logger, httpServer, config.ShutdownTimeout),
		workers.NewValueLogGCWorker(logger, db, config.GCInterval, config.GCDiscardRatio),
		workers.NewProcessStatsWorker(logger, config.MetricInterval),
	)

	logger.Info("Portal starting", "address", config.Address(), "scope", config.Scope(), "policy", config.ConsistencyPolicy)
	// Blocks until the signal context is canceled and every worker returned
	sup.Run(ctx)
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
