package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mkowalczyk/docdeck"
	"github.com/mkowalczyk/docdeck/cache"
	"github.com/mkowalczyk/docdeck/config"
	dochttp "github.com/mkowalczyk/docdeck/http"
	docslog "github.com/mkowalczyk/docdeck/slog"
	"github.com/mkowalczyk/docdeck/sqlite"
)

func main() {
	// A .env in the working directory may carry DOCDECK_API_URL.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath points at an explicit config file. Empty means the
	// default search order (./docdeck.yaml, then the user config dir).
	ConfigPath string

	// DBPath overrides the credential database location. Set before
	// calling Run(); empty uses the configured or default path.
	DBPath string

	// Loaded configuration, available after Run().
	Config *config.Config

	// SQLite database holding the credential and search history.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Documents   docdeck.DocumentService
	Searches    docdeck.SearchService
	RAG         docdeck.RAGService
	Snippets    docdeck.SnippetService
	Healths     docdeck.HealthService
	History     docdeck.HistoryService
	Credentials docdeck.CredentialStore
	Store       *cache.Store
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docdeck"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docdeck --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.loadConfig(); err != nil {
		return err
	}

	if err := m.openDB(stderr); err != nil {
		return err
	}
	defer m.Close()

	m.wireServices(stderr)

	deps.Config = m.Config
	deps.Documents = m.Documents
	deps.Searches = m.Searches
	deps.RAG = m.RAG
	deps.Snippets = m.Snippets
	deps.Healths = m.Healths
	deps.History = m.History
	deps.Credentials = m.Credentials
	deps.Store = m.Store

	return kongCtx.Run(deps)
}

func (m *Main) loadConfig() error {
	if m.ConfigPath != "" {
		cfg, err := config.Load(m.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config at %q: %w", m.ConfigPath, err)
		}
		m.Config = cfg
		return nil
	}
	cfg, _, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	m.Config = cfg
	return nil
}

func (m *Main) openDB(stderr io.Writer) error {
	path := m.DBPath
	if path == "" {
		path = m.Config.DBPath
	}
	if path == "" {
		defaultPath, err := config.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("failed to resolve database path: %w", err)
		}
		path = defaultPath
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: set db_path in the config file to use a different location")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

// wireServices assembles the service stack: HTTP transport at the bottom,
// logging decorators above it, the request cache on top. Commands only ever
// see the cached interfaces.
func (m *Main) wireServices(stderr io.Writer) {
	m.Credentials = sqlite.NewCredentialStore(m.DB)
	m.History = sqlite.NewHistoryService(m.DB)

	client := dochttp.NewClient(m.Config.API.BaseURL,
		dochttp.WithTimeout(m.Config.Timeout()),
		dochttp.WithCredentialStore(m.Credentials),
		dochttp.WithRetryPolicy(docdeck.DefaultRetryPolicy(m.Config.API.MaxAttempts)),
	)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(m.Config.LogLevel),
	}))

	windows := cache.Windows{
		Short:   m.Config.ShortWindow(),
		Listing: m.Config.ListingWindow(),
		Long:    m.Config.LongWindow(),
	}
	m.Store = cache.NewStore()

	m.Documents = cache.NewDocumentService(m.Store,
		docslog.NewLoggingDocumentService(client, logger), windows)
	m.Searches = cache.NewSearchService(m.Store,
		docslog.NewLoggingSearchService(client, logger), windows, m.Config.Cache.SuggestRPS)
	m.RAG = cache.NewRAGService(m.Store,
		docslog.NewLoggingRAGService(client, logger), windows)
	m.Snippets = client
	m.Healths = client
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
