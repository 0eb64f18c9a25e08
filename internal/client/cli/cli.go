package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/offlinesync/internal/client/iocli"
	"github.com/iudanet/offlinesync/internal/client/offline"
	"github.com/iudanet/offlinesync/pkg/api"
)

// ServerStatus - запрос состояния сервера перед синхронизацией
type ServerStatus interface {
	Status(ctx context.Context) (*api.StatusResponse, error)
}

// Secrets - источники секрета для шифрования документов
type Secrets struct {
	FromConfig string // documents.secret, в том числе OFFLINESYNC_DOCUMENTS_SECRET
	FromFile   string
	FromArgs   string
}

type Cli struct {
	io      iocli.IO
	offline offline.Service
	server  ServerStatus
}

// New создает CLI; server может быть nil
func New(io iocli.IO, offlineService offline.Service, server ServerStatus) *Cli {
	return &Cli{
		io:      io,
		offline: offlineService,
		server:  server,
	}
}

// DocumentSecret reads the document sealing secret from various sources with priority:
// 1. Configuration (documents.secret or OFFLINESYNC_DOCUMENTS_SECRET)
// 2. File specified in secrets.FromFile
// 3. Command-line parameter
// 4. Interactive prompt (fallback)
func DocumentSecret(io iocli.IO, secrets Secrets) (string, error) {
	// Priority 1: Configuration
	if secrets.FromConfig != "" {
		return secrets.FromConfig, nil
	}

	// Priority 2: File
	if secrets.FromFile != "" {
		content, err := os.ReadFile(secrets.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file: %w", err)
		}
		// Убираем trailing newline/whitespace
		secret := strings.TrimSpace(string(content))
		if secret == "" {
			return "", fmt.Errorf("secret file is empty")
		}
		return secret, nil
	}

	// Priority 3: CLI parameter
	if secrets.FromArgs != "" {
		return secrets.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	secret, err := io.ReadPassword("Documents secret: ")
	if err != nil {
		return "", fmt.Errorf("failed to read secret from stdin: %w", err)
	}
	if secret == "" {
		return "", fmt.Errorf("secret cannot be empty")
	}

	return secret, nil
}

func PrintUsage() {
	fmt.Println("Offline request queue client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  offlinesync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version              Show version information")
	fmt.Println("  --config PATH          Configuration file (yaml, json, toml)")
	fmt.Println("  --server URL           Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH              Path to request queue database (default: offlinesync.db)")
	fmt.Println("  --blobs PATH           Path to document store (default: offlinesync-blobs.db)")
	fmt.Println("  --secret SECRET        Documents secret (not recommended, use env var or file)")
	fmt.Println("  --secret-file PATH     Path to file containing documents secret")
	fmt.Println("  --log-level LEVEL      debug, info, warn, error (default: info)")
	fmt.Println()
	fmt.Println("Every option can be set with an OFFLINESYNC_* environment variable,")
	fmt.Println("e.g. OFFLINESYNC_SERVER_URL, OFFLINESYNC_DOCUMENTS_SEAL=true.")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  status                 Show queue status")
	fmt.Println("  list                   List queued requests")
	fmt.Println("  sync                   Send queued requests to server")
	fmt.Println("  errors                 List requests with errors")
	fmt.Println("  clear-errors           Clear errors so requests are sent again")
	fmt.Println("  export <nr>            Print request as XML")
	fmt.Println("  delete <nr>            Delete request and undo its changes")
	fmt.Println("  block <nr>             Park request, sync skips it")
	fmt.Println("  unblock                Release the parked request")
	fmt.Println("  history [limit]        Show recent synchronizations")
	fmt.Println("  reset                  Delete all queued requests and documents")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  offlinesync status")
	fmt.Println("  offlinesync --server https://crm.example.com sync")
	fmt.Println("  offlinesync export 12 > request-12.xml")
}
