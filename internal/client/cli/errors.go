package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runErrors(ctx context.Context) error {
	requests, err := c.offline.PendingRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to list requests: %w", err)
	}

	c.io.Println("=== Requests With Errors ===")
	c.io.Println()

	count := 0
	for _, req := range requests {
		if !req.HasError() || req.IsBlocked() {
			continue
		}
		count++
		c.io.Println(describe(req))
		if reqErr := req.StoredError(); reqErr != nil {
			c.io.Printf("       %s\n", reqErr.Error())
		}
	}

	if count == 0 {
		c.io.Println("No requests with errors.")
		return nil
	}

	c.io.Println()
	c.io.Printf("Total: %d request(s). Fix the data or run 'offlinesync clear-errors' to retry.\n", count)
	return nil
}

func (c *Cli) runClearErrors(ctx context.Context) error {
	cleared, err := c.offline.ClearAllErrors(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear errors: %w", err)
	}

	if cleared == 0 {
		c.io.Println("No requests with errors.")
		return nil
	}

	c.io.Printf("✓ Cleared errors on %d request(s)\n", cleared)
	c.io.Println("Run 'offlinesync sync' to send them again.")
	return nil
}
