package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/offlinesync/internal/client/request"
)

// parseRequestNr разбирает номер запроса из первого аргумента команды
func parseRequestNr(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing request number. Usage: offlinesync %s", usage)
	}
	nr, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || nr <= 0 {
		return 0, fmt.Errorf("invalid request number: %s", args[0])
	}
	return nr, nil
}

// confirm запрашивает подтверждение yes/no
func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt + " (yes/no): ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = strings.ToLower(answer)
	return answer == "yes" || answer == "y", nil
}

// describe returns a one-line summary of a queued request
func describe(req *request.Request) string {
	title := req.Title
	if title == "" {
		title = string(req.Kind.ProcessType)
	}

	var parts []string
	switch {
	case req.IsMulti():
		parts = append(parts, fmt.Sprintf("%d step(s)", len(req.Children)))
	case len(req.Records) > 0:
		parts = append(parts, fmt.Sprintf("%d record(s)", len(req.Records)))
	case req.Document != nil:
		parts = append(parts, fmt.Sprintf("%s, %d bytes", req.Document.FileName, req.DocumentSize()))
	}
	if req.IsBlocked() {
		parts = append(parts, "blocked")
	} else if req.HasError() {
		parts = append(parts, "error")
	}

	line := fmt.Sprintf("#%-5d %-20s %s", req.ID, title, req.Timestamp.Format("2006-01-02 15:04"))
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, ", ") + ")"
	}
	return line
}
