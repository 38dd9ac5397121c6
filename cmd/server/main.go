package main

import (
	"care-chat/auth"
	"care-chat/contract"
	server2 "care-chat/infrastructure/grpc/server"
	"care-chat/internal"
	"care-chat/repositories"
	"care-chat/runtime"
	"care-chat/runtime/workers"
	"care-chat/services"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
	}
	os.Exit(code)
}

// run wires storage, the chat server and its background workers, then blocks until a signal arrives.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database (BadgerDB), every commit synced to disk before it is acknowledged
	db, err := badger.Open(buildBadgerOpts(config, log, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	userRepository := repositories.NewUserRepository(db)
	historyRepository, err := repositories.NewHistoryRepository(db, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = historyRepository.Close() }()

	// 4. Chat server
	contacts := services.NewContactService(log, userRepository, config.EnforceContacts)
	server := runtime.NewServer(log, serverConfig(config), historyRepository,
		buildAuthenticator(config, userRepository)).
		WithContactPolicy(contacts)
	if err = server.Start(ctx); err != nil {
		return exitRuntime, fmt.Errorf("chat server failed to start: %w", err)
	}
	log.Info("Clients can connect", "address", server.Address(),
		"token_mode", config.TokenMode(),
		"enforce_contacts", config.EnforceContacts)

	// 5. Supervised background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewTelemetryWorker(log, config.TelemetryInterval, server.Registry(), server.Store()))
	if config.HealthPort > 0 {
		sup.Add(server2.NewHealthServer(log, config.HealthPort, server.Ready))
	}
	supervised := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervised)
	}()

	// 6. Wait for Stop
	<-ctx.Done()
	log.Info("Shutdown signal received")

	// 7. Final Cleanup
	server.Stop()
	sup.Stop()
	<-supervised
	log.Info("Program stopped cleanly")
	return exitOK, nil
}

func serverConfig(config internal.Config) runtime.ServerConfig {
	return runtime.ServerConfig{
		Host:           config.Host,
		BasePort:       config.BasePort,
		PortAttempts:   config.PortAttempts,
		MaxConnections: config.MaxConnections,
		Session: runtime.SessionOptions{
			HandshakeTimeout: config.HandshakeTimeout,
			WriteTimeout:     config.WriteTimeout,
			OutboundBuffer:   config.OutboundBuffer,
		},
	}
}

// buildAuthenticator picks plain user IDs or signed tokens, optionally restricted to directory members.
func buildAuthenticator(config internal.Config, directory contract.IDirectory) contract.IAuthenticator {
	var authenticator contract.IAuthenticator = auth.NewPlainAuthenticator()
	if config.TokenMode() {
		authenticator = auth.NewTokenAuthenticator(auth.NewTokenIssuer(config.TokenSecret, config.TokenDuration))
	}
	if config.RequireKnownUser {
		authenticator = services.NewDirectoryAuthenticator(authenticator, directory)
	}
	return authenticator
}

func buildBadgerOpts(config internal.Config, log *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath).WithSyncWrites(true)
	if log.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}
