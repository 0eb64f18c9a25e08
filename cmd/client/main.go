package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/iudanet/offlinesync/internal/client/api"
	"github.com/iudanet/offlinesync/internal/client/cache"
	"github.com/iudanet/offlinesync/internal/client/cli"
	"github.com/iudanet/offlinesync/internal/client/iocli"
	"github.com/iudanet/offlinesync/internal/client/offline"
	"github.com/iudanet/offlinesync/internal/client/request"
	"github.com/iudanet/offlinesync/internal/client/storage/boltdb"
	"github.com/iudanet/offlinesync/internal/client/storage/sqlite"
	syncsvc "github.com/iudanet/offlinesync/internal/client/sync"
	"github.com/iudanet/offlinesync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Configuration file")
	serverURL := flag.String("server", "", "Server URL")
	dbPath := flag.String("db", "", "Path to request queue database")
	blobsPath := flag.String("blobs", "", "Path to document store")
	logLevel := flag.String("log-level", "", "Log level")
	secret := flag.String("secret", "", "Documents secret (not recommended)")
	secretFile := flag.String("secret-file", "", "Path to file containing documents secret")

	flag.Usage = cli.PrintUsage
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	configViper := config.NewViper()
	if err := config.ReadFile(configViper, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// флаги командной строки важнее файла и переменных окружения
	for key, value := range map[string]string{
		config.KeyServerURL:    *serverURL,
		config.KeyDatabasePath: *dbPath,
		config.KeyBlobsPath:    *blobsPath,
		config.KeyLogLevel:     *logLevel,
	} {
		if value != "" {
			configViper.Set(key, value)
		}
	}

	cfg, err := config.Load(configViper)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, config.NewSource(configViper), args[0], args[1:], cli.Secrets{
		FromConfig: cfg.DocumentSecret,
		FromFile:   *secretFile,
		FromArgs:   *secret,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.AppConfig, source config.Source, command string, args []string, secrets cli.Secrets) error {
	// Создаем контекст
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	stdio := iocli.NewStdio()

	// Открываем очередь запросов
	store, err := sqlite.New(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Крупные документы хранятся в BoltDB, при documents.seal - зашифрованными
	sealSecret := ""
	if cfg.SealDocuments {
		sealSecret, err = cli.DocumentSecret(stdio, secrets)
		if err != nil {
			return fmt.Errorf("failed to get documents secret: %w", err)
		}
	}
	blobs, err := boltdb.New(ctx, cfg.BlobsPath, sealSecret)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer func() {
		if err := blobs.Close(); err != nil {
			logger.Error("failed to close document store", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(cfg.ServerURL, cfg.DeviceID, logger)
	if cfg.ServerToken != "" {
		apiClient.SetToken(cfg.ServerToken)
	}

	runtime := request.NewRuntime(store, cache.NewMemory(), apiClient, blobs, source, logger)
	runtime.SetAppVersion(Version)

	scheduler := syncsvc.NewService(runtime, source, logger)
	offlineService := offline.NewService(runtime, scheduler, blobs, source, logger)

	// Выполняем команду
	return cli.New(stdio, offlineService, apiClient).Run(ctx, command, args)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printVersion() {
	fmt.Printf("Offline request queue client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
