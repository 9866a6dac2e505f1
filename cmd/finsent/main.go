package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/msaleev/finsent"
	"github.com/msaleev/finsent/edgar"
	"github.com/msaleev/finsent/gemini"
	"github.com/msaleev/finsent/goquery"
	finsentslog "github.com/msaleev/finsent/slog"
	"github.com/msaleev/finsent/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog database path. Set before calling Run().
	DBPath string

	// SQLite database backing the filing catalog.
	DB *sqlite.DB

	// Catalog service for end-to-end testing.
	Catalog finsent.CatalogService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("finsent"),
		kong.Description("Extract and classify narrative text from SEC EDGAR filings"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'finsent --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	// Open the catalog for commands that use it.
	if cmd == "fetch" || cmd == "list" || (cmd == "classify" && cli.Classify.Accession != "") {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set FINSENT_DB to use a different catalog path\n")
			return fmt.Errorf("failed to open catalog at %q: %w", m.DBPath, err)
		}
		m.Catalog = sqlite.NewCatalogService(m.DB)
		deps.Catalog = m.Catalog
	}

	// Wire SEC services for commands that reach EDGAR.
	if cmd == "fetch" || cmd == "search" {
		client := edgar.NewClient()
		source := &edgar.FallbackSource{
			Primary:  client,
			Fallback: edgar.NewAtomSource(client),
		}
		deps.Source = finsentslog.NewSource(source, deps.Logger)
		deps.Directory = edgar.NewDirectory(client)
	}

	deps.Stripper = goquery.NewStripper()

	// Wire the sentiment classifier only when it will be used; it
	// needs an API key.
	if cmd == "classify" || (cmd == "fetch" && cli.Fetch.Classify) {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Classifier = finsentslog.NewClassifier(gemini.NewClassifier(client), deps.Logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("FINSENT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "finsent.db"
	}
	dir := filepath.Join(home, ".finsent")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "finsent.db")
}
