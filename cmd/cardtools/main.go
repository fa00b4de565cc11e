// cardtools - test card data toolkit
// Main application entry point
//
// INITIALIZATION ORDER:
//  1. Load and validate config (env + .env)
//  2. Build the logger
//  3. Load the BIN database (commands that need it)
//  4. Dispatch the command
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/keraattin/cardtools/cmd/cardtools/commands"
	"github.com/keraattin/cardtools/internal/bindb"
	"github.com/keraattin/cardtools/internal/card"
	"github.com/keraattin/cardtools/internal/config"
)

// Version is the application version
const Version = "1.0.0"

func main() {
	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := commands.NewLogger(cfg.LogLevel, os.Stderr)
	gen := card.NewGenerator(card.WithYearsAhead(cfg.ExpiryYearsAhead))

	cmd := &cli.Command{
		Name:    "cardtools",
		Usage:   "Luhn validation, BIN lookup and test card number generation",
		Version: Version,
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate Luhn-valid card numbers from a BIN",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "bin",
						Aliases:  []string{"b"},
						Required: true,
						Usage:    "BIN prefix, at least 6 digits",
					},
					&cli.StringFlag{
						Name:  "month",
						Usage: "Expiry month (random 01-12 if omitted)",
					},
					&cli.StringFlag{
						Name:  "year",
						Usage: "Expiry year (random in the configured window if omitted)",
					},
					&cli.StringFlag{
						Name:  "cvv",
						Usage: "Security code (random if omitted)",
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Number of cards to generate (default: DEFAULT_BATCH_SIZE)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text', 'json' or 'csv'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					count := int(cmd.Int("count"))
					if !cmd.IsSet("count") {
						count = cfg.DefaultBatchSize
					}

					// The database only enriches the header, generation works without it
					db, err := bindb.InitGlobal(cfg.BinDBPath)
					if err != nil {
						logger.Warn("BIN database unavailable", slog.Any("error", err))
					}

					return commands.RunGenerate(gen, db, logger, os.Stdout, commands.GenerateOptions{
						BIN:    cmd.String("bin"),
						Month:  cmd.String("month"),
						Year:   cmd.String("year"),
						CVV:    cmd.String("cvv"),
						Count:  count,
						Format: cmd.String("format"),
					}, cfg.MaxBatchSize)
				},
			},
			{
				Name:  "generate-bin",
				Usage: "Generate a BIN for a brand",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "brand",
						Value: "visa",
						Usage: "Brand: amex, visa, mastercard or discover",
					},
					&cli.StringFlag{
						Name:    "source",
						Aliases: []string{"s"},
						Value:   commands.SourceRandom,
						Usage:   "Where the BIN comes from: 'random' or 'database'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					var db *bindb.Database
					if cmd.String("source") == commands.SourceDatabase {
						loaded, err := bindb.InitGlobal(cfg.BinDBPath)
						if err != nil {
							return err
						}
						db = loaded
					}
					return commands.RunGenerateBIN(gen, db, logger, os.Stdout, cmd.String("brand"), cmd.String("source"))
				},
			},
			{
				Name:      "check-bin",
				Usage:     "Look up a 6-digit BIN in the database",
				ArgsUsage: "<bin>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					db, err := bindb.InitGlobal(cfg.BinDBPath)
					if err != nil {
						return err
					}
					return commands.RunCheckBIN(db, logger, os.Stdout, cmd.Args().First())
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a card string in cc|mm|yyyy|cvv form",
				ArgsUsage: "<cc|mm|yyyy|cvv>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunValidate(logger, os.Stdout, cmd.Args().First())
				},
			},
			{
				Name:  "status",
				Usage: "Show version and BIN database size",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					db, err := bindb.InitGlobal(cfg.BinDBPath)
					if err != nil {
						return err
					}
					return commands.RunStatus(db, os.Stdout, Version)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("application error", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
