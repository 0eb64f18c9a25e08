package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	nr, err := parseRequestNr(args, "export <nr>")
	if err != nil {
		return err
	}

	data, err := c.offline.ExportRequest(ctx, nr)
	if err != nil {
		return fmt.Errorf("failed to export request %d: %w", nr, err)
	}

	if _, err := c.io.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	c.io.Println()
	return nil
}
