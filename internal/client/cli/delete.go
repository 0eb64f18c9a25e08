package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/offlinesync/internal/client/storage"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	nr, err := parseRequestNr(args, "delete <nr>")
	if err != nil {
		return err
	}

	c.io.Println("=== Delete Request ===")
	c.io.Println()

	// Показываем запрос, который будет удален
	requests, err := c.offline.PendingRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to list requests: %w", err)
	}
	found := false
	for _, req := range requests {
		if req.ID == nr {
			c.io.Println("About to delete:")
			c.io.Println("  " + describe(req))
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("request not found: %d", nr)
	}
	c.io.Println()

	ok, err := c.confirm("Local changes of this request will be undone. Continue?")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println()
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.offline.DeleteRequest(ctx, nr); err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			return fmt.Errorf("request not found: %d", nr)
		}
		return fmt.Errorf("failed to delete request: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Request deleted successfully!")
	return nil
}

func (c *Cli) runBlock(ctx context.Context, args []string) error {
	nr, err := parseRequestNr(args, "block <nr>")
	if err != nil {
		return err
	}

	if err := c.offline.SetBlockingRequest(ctx, nr); err != nil {
		return err
	}

	c.io.Printf("✓ Request #%d blocked, sync will skip it\n", nr)
	return nil
}

func (c *Cli) runUnblock(ctx context.Context) error {
	nr, ok := c.offline.BlockingRequest()
	if !ok {
		c.io.Println("No blocked request.")
		return nil
	}

	if err := c.offline.ClearBlockingRequest(ctx); err != nil {
		return err
	}

	c.io.Printf("✓ Request #%d released\n", nr)
	return nil
}
