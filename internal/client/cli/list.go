package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	requests, err := c.offline.PendingRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to list requests: %w", err)
	}

	c.io.Println("=== Queued Requests ===")
	c.io.Println()

	if len(requests) == 0 {
		c.io.Println("No queued requests.")
		return nil
	}

	for _, req := range requests {
		c.io.Println(describe(req))
	}

	c.io.Println()
	c.io.Printf("Total: %d request(s)\n", len(requests))
	return nil
}
