package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const defaultHistoryLimit = 10

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid limit: %s", args[0])
		}
		limit = n
	}

	entries, err := c.offline.SyncHistory(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to read sync history: %w", err)
	}

	c.io.Println("=== Sync History ===")
	c.io.Println()

	if len(entries) == 0 {
		c.io.Println("No synchronizations yet.")
		return nil
	}

	for _, e := range entries {
		duration := "-"
		if e.FinishedAt != nil {
			duration = e.FinishedAt.Sub(e.StartedAt).Round(time.Millisecond).String()
		}
		c.io.Printf("%s  %-8s  sent %d, skipped %d, %s\n",
			e.StartedAt.Format("2006-01-02 15:04:05"), e.Status, e.Processed, e.Skipped, duration)
		if e.Detail != "" {
			c.io.Printf("    %s\n", e.Detail)
		}
	}
	return nil
}
