package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/offlinesync/internal/client/storage"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage represents the durable request log of the offline queue.
// All access to the connection is serialized by one mutex: the store is single-writer.
type Storage struct {
	db            *sql.DB
	logger        *slog.Logger
	nextRequestNr atomic.Int64
	mu            sync.Mutex
}

// New creates a new SQLite storage instance
// dbPath is the path to the SQLite database file
// Use ":memory:" for in-memory database (useful for testing)
func New(ctx context.Context, dbPath string, logger *slog.Logger) (*Storage, error) {
	// Открываем соединение с БД
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Один писатель: все операции идут через одно соединение
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Storage{db: db, logger: logger}

	// Схема обязательна: без нее очередь не может работать
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", storage.ErrSchema, err)
	}

	if err := s.seedRequestCounter(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to seed request counter: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}

// ensureSchema runs the embedded migrations and then the additive column probes
func (s *Storage) ensureSchema(ctx context.Context) error {
	goose.SetDialect("sqlite3")
	goose.SetBaseFS(embedMigrations)

	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return applyColumnMigrations(ctx, s.db, s.logger)
}

// seedRequestCounter начинает нумерацию после максимального номера в requests и records,
// чтобы номера не пересекались даже после аварийного завершения посреди записи
func (s *Storage) seedRequestCounter(ctx context.Context) error {
	var maxNr int64
	err := s.db.QueryRowContext(ctx, `
		SELECT MAX(
			COALESCE((SELECT MAX(requestnr) FROM requests), 0),
			COALESCE((SELECT MAX(requestnr) FROM records), 0)
		)
	`).Scan(&maxNr)
	if err != nil {
		return err
	}
	s.nextRequestNr.Store(maxNr)
	return nil
}

// NextRequestNr returns the next request id; ids strictly increase with creation order
func (s *Storage) NextRequestNr() int64 {
	return s.nextRequestNr.Add(1)
}

// Update runs fn inside a write transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
func (s *Storage) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&Tx{tx: sqlTx}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.Error("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// View runs fn inside a transaction that is always rolled back
func (s *Storage) View(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	return fn(&Tx{tx: sqlTx})
}

// EmptyAll removes every queued request, delta, document and counter (full resync, logout)
func (s *Storage) EmptyAll(ctx context.Context) error {
	err := s.Update(ctx, func(tx *Tx) error {
		tables := []string{
			"recordfields",
			"recordlinks",
			"records",
			"documentuploads",
			"requests",
			"synchistory",
			"requestcontrol",
		}
		for _, table := range tables {
			if _, err := tx.tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to empty %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.nextRequestNr.Store(0)
	return nil
}

// Tx is an open store transaction; all CRUD primitives of the queue hang off it
type Tx struct {
	tx *sql.Tx
}

// Helper functions for bool/int conversion
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
