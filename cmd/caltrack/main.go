package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hpungsan/caltrack/internal/config"
	"github.com/hpungsan/caltrack/internal/db"
	"github.com/hpungsan/caltrack/internal/mcp"
	"github.com/hpungsan/caltrack/internal/session"
	"github.com/hpungsan/caltrack/internal/storage"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"add": true, "edit": true, "delete": true, "list": true,
	"summary": true, "restart": true, "export": true, "import": true,
	"serve": true, "help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
            _ _                  _
   ___ __ _| | |_ _ __ __ _  ___| | __
  / __/ _' | | __| '__/ _' |/ __| |/ /
 | (_| (_| | | |_| | | (_| | (__|   <
  \___\__,_|_|\__|_|  \__,_|\___|_|\_\

  Local calorie tracker

  Usage: caltrack <command> [options]
         caltrack serve      (web UI)
         caltrack --help

  MCP server mode requires piped input.`)
}

// openSession loads the persisted activity list and returns a session that
// writes every change back to the database.
func openSession(ctx context.Context, database *sql.DB, cfg *config.Config) (*session.Session, error) {
	bridge := storage.New(db.NewKV(database), cfg.StorageKey, cfg.StrictLoad)
	return session.Open(ctx, bridge)
}

// warnUnknownDisabled logs config entries that match no MCP tool or type.
func warnUnknownDisabled(cfg *config.Config) {
	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		log.Printf("WARNING: unknown tools in disabled_tools: %v", unknown)
	}
	if unknown := mcp.ValidateDisabledTypes(cfg.DisabledTypes); len(unknown) > 0 {
		log.Printf("WARNING: unknown types in disabled_types: %v", unknown)
	}
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, config.DirName)

	database, err := db.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = baseDir
	}
	cfg, err := config.LoadWithRepo(baseDir, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	db.ConfigurePool(database, cfg)

	s, err := openSession(context.Background(), database, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load activities: %v\n", err)
		os.Exit(1)
	}

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(s, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'caltrack --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	warnUnknownDisabled(cfg)
	if err := mcp.Run(s, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
