package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// columnMigration - колонка, добавленная после первой версии схемы.
// Колонки только добавляются, существующие данные не переписываются
// (единственное исключение - backfill для grouprequestnr).
type columnMigration struct {
	table      string
	column     string
	definition string
	backfill   string
}

var columnMigrations = []columnMigration{
	{
		table:      "requests",
		column:     "grouprequestnr",
		definition: "INTEGER DEFAULT -1",
		backfill:   "UPDATE requests SET grouprequestnr = -1 WHERE grouprequestnr IS NULL",
	},
	{table: "requests", column: "baseerrorcode", definition: "INTEGER"},
	{table: "requests", column: "appversion", definition: "TEXT"},
	{table: "requests", column: "applicationrequest", definition: "INTEGER NOT NULL DEFAULT 0"},
	{table: "documentuploads", column: "blobkey", definition: "TEXT"},
}

// applyColumnMigrations проверяет наличие каждой колонки и добавляет отсутствующие
func applyColumnMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	for _, m := range columnMigrations {
		exists, err := hasColumn(ctx, db, m.table, m.column)
		if err != nil {
			return fmt.Errorf("probe %s.%s: %w", m.table, m.column, err)
		}
		if exists {
			continue
		}

		ddl := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.table, m.column, m.definition)
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("add column %s.%s: %w", m.table, m.column, err)
		}

		if m.backfill != "" {
			if _, err := db.ExecContext(ctx, m.backfill); err != nil {
				return fmt.Errorf("backfill %s.%s: %w", m.table, m.column, err)
			}
		}

		logger.Debug("Added column", "table", m.table, "column", m.column)
	}

	return nil
}

func hasColumn(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
