package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду; ошибка печатается вызывающим
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx)
	case "sync":
		return c.runSync(ctx)
	case "errors":
		return c.runErrors(ctx)
	case "clear-errors":
		return c.runClearErrors(ctx)
	case "export":
		return c.runExport(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "block":
		return c.runBlock(ctx, args)
	case "unblock":
		return c.runUnblock(ctx)
	case "history":
		return c.runHistory(ctx, args)
	case "reset":
		return c.runReset(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
