// Command swissctl runs a Swiss-system tournament from the shell against the
// same store the server uses.
//
// Usage:
//
//	swissctl migrate
//	swissctl register "Ada Lovelace"
//	swissctl report 1 2
//	swissctl standings
//	swissctl pairings
//	swissctl delete matches
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/config"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/Dosada05/swiss-tournament/storage"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "swissctl",
		Short:        "Swiss-system tournament CLI",
		SilenceUsage: true,
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(registerCmd())
	root.AddCommand(countCmd())
	root.AddCommand(reportCmd())
	root.AddCommand(standingsCmd())
	root.AddCommand(pairingsCmd())
	root.AddCommand(deleteCmd())
	root.AddCommand(exportCmd())
	return root
}

// app is the service graph one command needs.
type app struct {
	cfg        *config.Config
	conn       *sql.DB
	dialect    db.Dialect
	players    services.PlayerService
	matches    services.MatchService
	tournament services.TournamentService
}

func runApp(fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dialect, err := db.ParseDialect(cfg.DatabaseDriver)
	if err != nil {
		return err
	}
	conn, err := db.Connect(dialect, cfg.DatabaseURL, cfg.DBConnectTimeout, cfg.DBMaxOpenConns)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer conn.Close()

	playerRepo := repositories.NewPlayerRepository(conn, dialect)
	matchRepo := repositories.NewMatchRepository(conn, dialect)
	return fn(ctx, &app{
		cfg:        cfg,
		conn:       conn,
		dialect:    dialect,
		players:    services.NewPlayerService(conn, playerRepo, matchRepo, nil, logger),
		matches:    services.NewMatchService(conn, matchRepo, nil, logger),
		tournament: services.NewTournamentService(conn, dialect, playerRepo, matchRepo, nil, logger),
	})
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the players and matches tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app) error {
				if err := db.ApplySchema(ctx, a.conn, a.dialect); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema applied (%s)\n", a.dialect)
				return nil
			})
		},
	}
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <name>",
		Short: "Register a player and print the assigned id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app) error {
				player, err := a.players.RegisterPlayer(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), player.ID)
				return nil
			})
		},
	}
}

func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of registered players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app) error {
				count, err := a.players.CountPlayers(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), count)
				return nil
			})
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <winner-id> <loser-id>",
		Short: "Record that the first player beat the second",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			winnerID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid winner id %q: %w", args[0], err)
			}
			loserID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid loser id %q: %w", args[1], err)
			}
			return runApp(func(ctx context.Context, a *app) error {
				match, err := a.matches.ReportMatch(ctx, winnerID, loserID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "match %d recorded: %d beat %d\n", match.ID, match.WinnerID, match.LoserID)
				return nil
			})
		},
	}
}

func standingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Print the current standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app) error {
				standings, err := a.tournament.PlayerStandings(ctx)
				if err != nil {
					return err
				}
				return printStandings(cmd.OutOrStdout(), standings)
			})
		},
	}
}

func pairingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairings",
		Short: "Print the Swiss pairings for the next round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app) error {
				pairings, err := a.tournament.SwissPairings(ctx)
				var oddErr *brackets.OddPlayerCountError
				if errors.As(err, &oddErr) {
					return fmt.Errorf("cannot pair %d players; register or remove one player first", oddErr.Count)
				}
				if err != nil {
					return err
				}
				return printPairings(cmd.OutOrStdout(), pairings)
			})
		},
	}
}

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Bulk reset commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "matches",
		Short: "Delete every match, keeping players",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app) error {
				if err := a.matches.DeleteMatches(ctx); err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), "matches deleted")
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "players",
		Short: "Delete every player and every match",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app) error {
				if err := a.players.DeletePlayers(ctx); err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), "players deleted")
				return nil
			})
		},
	})
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Upload standings and pairings to the configured R2 bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app) error {
				var uploader storage.FileUploader
				if a.cfg.ExportEnabled() {
					var err error
					uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
						AccountID:       a.cfg.R2AccountID,
						AccessKeyID:     a.cfg.R2AccessKeyID,
						SecretAccessKey: a.cfg.R2SecretAccessKey,
						BucketName:      a.cfg.R2BucketName,
						PublicBaseURL:   a.cfg.R2PublicBaseURL,
					})
					if err != nil {
						return err
					}
				}
				export, err := services.NewExportService(a.tournament, uploader, logger).ExportSnapshot(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, export.StandingsURL)
				if export.PairingsURL != "" {
					fmt.Fprintln(out, export.PairingsURL)
				}
				return nil
			})
		},
	}
}

func printStandings(w io.Writer, standings []models.Standing) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tNAME\tWINS\tMATCHES")
	for i, s := range standings {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\n", i+1, s.ID, s.Name, s.Wins, s.Matches)
	}
	return tw.Flush()
}

func printPairings(w io.Writer, pairings []models.Pairing) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tPLAYER 1\tPLAYER 2")
	for i, p := range pairings {
		fmt.Fprintf(tw, "%d\t%s (%d)\t%s (%d)\n", i+1, p.Player1Name, p.Player1ID, p.Player2Name, p.Player2ID)
	}
	return tw.Flush()
}
