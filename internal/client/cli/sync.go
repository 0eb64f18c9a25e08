package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/offlinesync/internal/client/iocli"
	"github.com/iudanet/offlinesync/internal/client/request"
	syncsvc "github.com/iudanet/offlinesync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	pending, err := c.offline.NumberOfUncommittedRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to count requests: %w", err)
	}
	if pending == 0 {
		c.io.Println()
		c.io.Println("✓ Nothing to synchronize")
		return nil
	}

	if c.server != nil {
		// обновляем счетчик запросов сервера; недоступность обнаружит сам проход
		if _, err := c.server.Status(ctx); err != nil {
			c.io.Printf("Warning: server status unavailable: %v\n", err)
		}
	}

	c.io.Println()
	c.io.Printf("Sending %d request(s) to server...\n", pending)

	report := &syncReport{io: c.io, done: make(chan struct{})}
	if !c.offline.Sync(ctx, report) {
		return fmt.Errorf("synchronization is already running")
	}

	select {
	case <-report.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	result := report.result
	if report.err != nil {
		c.io.Println()
		c.io.Printf("Sent before failure: %d request(s)\n", result.Processed)
		return fmt.Errorf("synchronization failed: %w", report.err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println()
	c.io.Printf("Sent to server:     %d request(s)\n", result.Processed)
	if result.Failed > 0 {
		c.io.Printf("Rejected by server: %d request(s)\n", result.Failed)
	}
	if result.Skipped > 0 {
		c.io.Printf("Skipped:            %d request(s)\n", result.Skipped)
	}

	return nil
}

// syncReport печатает ход прохода и ждет его завершения
type syncReport struct {
	io     iocli.IO
	done   chan struct{}
	result *syncsvc.SyncResult
	err    error
}

func (r *syncReport) RequestFinished(req *request.Request, result *request.Result) {
	r.io.Printf("  ✓ #%d %s\n", req.ID, req.Kind.ProcessType)
}

func (r *syncReport) RequestFailed(req *request.Request, err error) {
	r.io.Printf("  ✗ #%d %s: %v\n", req.ID, req.Kind.ProcessType, err)
}

func (r *syncReport) SyncFinished(result *syncsvc.SyncResult) {
	r.result = result
	close(r.done)
}

func (r *syncReport) SyncFailed(result *syncsvc.SyncResult, err error) {
	r.result = result
	r.err = err
	close(r.done)
}
