package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runReset(ctx context.Context) error {
	pending, err := c.offline.NumberOfUncommittedRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to count requests: %w", err)
	}

	if pending > 0 {
		c.io.Printf("⚠️  %d request(s) were never sent and will be lost.\n", pending)
	}
	ok, err := c.confirm("Delete all queued requests and documents?")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Reset cancelled.")
		return nil
	}

	if err := c.offline.EmptyAll(ctx); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}

	c.io.Println("✓ Queue emptied")
	return nil
}
