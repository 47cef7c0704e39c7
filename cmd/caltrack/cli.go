package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/config"
	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/ops"
	"github.com/hpungsan/caltrack/internal/report"
	"github.com/hpungsan/caltrack/internal/session"
	"github.com/hpungsan/caltrack/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(s *session.Session, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "caltrack",
		Usage:   "Local calorie tracker",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(s),
			editCmd(s),
			deleteCmd(s),
			listCmd(s),
			summaryCmd(s),
			restartCmd(s),
			exportCmd(s, cfg),
			importCmd(s, cfg),
			serveCmd(s, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(s *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a food or exercise entry",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Value: "food", Usage: "Category: food|exercise"},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "What was eaten or done"},
			&cli.IntFlag{Name: "calories", Aliases: []string{"k"}, Required: true, Usage: "Calorie count (positive)"},
			&cli.StringFlag{Name: "id", Usage: "Explicit id (generated when omitted)"},
		},
		Action: func(c *cli.Context) error {
			cat, err := activity.ParseCategory(c.String("category"))
			if err != nil {
				return outputError(errors.NewInvalidRequest(err.Error()))
			}

			output, err := ops.Save(c.Context, s, ops.SaveInput{
				ID:       c.String("id"),
				Category: cat,
				Name:     c.String("name"),
				Calories: c.Int("calories"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// editCmd creates the edit command.
func editCmd(s *session.Session) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Change fields of an existing entry in place",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "New category: food|exercise"},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New name"},
			&cli.IntFlag{Name: "calories", Aliases: []string{"k"}, Usage: "New calorie count"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("activity id is required"))
			}
			input := ops.EditInput{ID: c.Args().First()}

			if c.IsSet("category") {
				cat, err := activity.ParseCategory(c.String("category"))
				if err != nil {
					return outputError(errors.NewInvalidRequest(err.Error()))
				}
				input.Category = &cat
			}
			if c.IsSet("name") {
				name := c.String("name")
				input.Name = &name
			}
			if c.IsSet("calories") {
				calories := c.Int("calories")
				input.Calories = &calories
			}

			output, err := ops.Edit(c.Context, s, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(s *session.Session) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Remove an entry",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.Delete(c.Context, s, ops.DeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(s *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List entries in the order they were added",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Only show food or exercise"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ListInput{}
			if c.IsSet("category") {
				cat, err := activity.ParseCategory(c.String("category"))
				if err != nil {
					return outputError(errors.NewInvalidRequest(err.Error()))
				}
				input.Category = &cat
			}

			return outputJSON(ops.List(s, input))
		},
	}
}

// summaryCmd creates the summary command.
func summaryCmd(s *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Show calories consumed, burned and the net balance",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "Output format: json|markdown"},
		},
		Action: func(c *cli.Context) error {
			switch c.String("format") {
			case "json":
				return outputJSON(ops.Summary(s))
			case "markdown":
				_, err := fmt.Fprint(os.Stdout, report.Markdown(s.Snapshot(), time.Now()))
				return err
			default:
				return outputError(errors.NewInvalidRequest("format must be one of: json, markdown"))
			}
		},
	}
}

// restartCmd creates the restart command.
func restartCmd(s *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "restart",
		Usage: "Discard every entry and start over",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Confirm discarding all entries"},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("yes") {
				return outputError(errors.NewInvalidRequest("restart discards every entry; pass --yes to confirm"))
			}

			output, err := ops.Restart(c.Context, s)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(s *session.Session, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export entries to a JSONL file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.caltrack/exports/activities-<timestamp>.jsonl)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(c.Context, s, cfg, ops.ExportInput{Path: c.String("path")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// importCmd creates the import command.
func importCmd(s *session.Session, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import entries from a JSONL file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Import file path"},
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "append", Usage: "Import mode: append|replace"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Import(c.Context, s, cfg, ops.ImportInput{
				Path: c.String("path"),
				Mode: ops.ImportMode(c.String("mode")),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(s *session.Session, cfg *config.Config) *cli.Command {
	bind, port := "127.0.0.1", 7433
	if cfg != nil {
		bind, port = cfg.WebBind, cfg.WebPort
	}
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: bind, Usage: "Address to bind"},
			&cli.IntFlag{Name: "port", Value: port, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(s, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if cErr, ok := err.(*errors.CaltrackError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", cErr.Code, cErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
