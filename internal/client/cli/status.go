package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Queue Status ===")
	c.io.Println()

	pending, err := c.offline.NumberOfUncommittedRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to count requests: %w", err)
	}
	withErrors, err := c.offline.NumberOfRequestsWithErrors(ctx)
	if err != nil {
		return fmt.Errorf("failed to count requests with errors: %w", err)
	}

	if pending == 0 {
		c.io.Println("✓ All changes synchronized with server")
	} else {
		c.io.Printf("⚠️  Pending sync: %d request(s) waiting to be sent\n", pending)
	}

	if withErrors > 0 {
		c.io.Printf("⚠️  Requests with errors: %d\n", withErrors)
		c.io.Println("Run 'offlinesync errors' to see them, 'offlinesync clear-errors' to retry.")
	}

	if nr, ok := c.offline.BlockingRequest(); ok {
		c.io.Printf("Blocked request: #%d\n", nr)
	}
	if c.offline.OnlineRecordRequestsBlocked() {
		c.io.Println("Server unreachable: new changes go straight to the queue")
	}

	// последняя синхронизация
	history, err := c.offline.SyncHistory(ctx, 1)
	if err != nil {
		// Не прерываем выполнение
		c.io.Printf("\nWarning: Failed to read sync history: %v\n", err)
		return nil
	}
	if len(history) > 0 {
		last := history[0]
		c.io.Println()
		c.io.Printf("Last sync: %s (%s), %d sent, %d skipped\n",
			last.StartedAt.Format("2006-01-02 15:04:05"), last.Status, last.Processed, last.Skipped)
	}

	return nil
}
