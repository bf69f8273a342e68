// Package cli is the command line front end of the quest engine. Every
// command loads the save, runs one engine operation and, when the operation
// changes state, writes the save back.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/saulo-duarte/eternal-quest/internal/config"
	"github.com/saulo-duarte/eternal-quest/internal/container"
	"github.com/saulo-duarte/eternal-quest/internal/goal"
	"github.com/saulo-duarte/eternal-quest/internal/quest"
	"github.com/urfave/cli/v2"
)

const (
	ExitInternalError = 1
	ExitInvalidInput  = 2
	ExitNotFound      = 3
)

func NewApp() *cli.App {
	defaults := config.Default()

	return &cli.App{
		Name:  "eternalquest",
		Usage: "track goals, earn points, level up",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: defaults.SaveFile, Usage: "save file", EnvVars: []string{"QUEST_FILE"}},
			&cli.StringFlag{Name: "database-dsn", Usage: "postgres DSN; saves go to a database slot instead of a file", EnvVars: []string{"QUEST_DATABASE_DSN"}},
			&cli.StringFlag{Name: "slot", Value: defaults.Slot, Usage: "save slot name when a database is used", EnvVars: []string{"QUEST_SLOT"}},
			&cli.StringFlag{Name: "log-level", Value: defaults.LogLevel, Usage: "log level", EnvVars: []string{"QUEST_LOG_LEVEL"}},
			&cli.StringFlag{Name: "log-format", Value: defaults.LogFormat, Usage: "log format (text or json)", EnvVars: []string{"QUEST_LOG_FORMAT"}},
			&cli.BoolFlag{Name: "replay-on-load", Usage: "replay level ups and badges when loading a save", EnvVars: []string{"QUEST_REPLAY_ON_LOAD"}},
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "start a new save",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "seed", Usage: "add the example goals"},
					&cli.BoolFlag{Name: "force", Usage: "overwrite an existing save"},
				},
				Action: initAction,
			},
			{
				Name:   "list",
				Usage:  "show goals",
				Action: listAction,
			},
			{
				Name:  "create",
				Usage: "create a new goal",
				Subcommands: []*cli.Command{
					createCommand(goal.KindSimple, "one-time goal"),
					createCommand(goal.KindEternal, "repeatable goal"),
					createCommand(goal.KindChecklist, "goal completed N times",
						&cli.IntFlag{Name: "target", Value: 1, Usage: "times to complete"},
						&cli.IntFlag{Name: "bonus", Usage: "bonus on completion"},
					),
				},
			},
			{
				Name:      "record",
				Usage:     "record an event for a goal",
				ArgsUsage: "<goal number>",
				Action:    recordAction,
			},
			{
				Name:   "score",
				Usage:  "show score, level and badges",
				Action: scoreAction,
			},
		},
	}
}

func configFrom(c *cli.Context) config.Config {
	return config.Config{
		SaveFile:     c.String("file"),
		DatabaseDSN:  c.String("database-dsn"),
		Slot:         c.String("slot"),
		LogLevel:     c.String("log-level"),
		LogFormat:    c.String("log-format"),
		ReplayOnLoad: c.Bool("replay-on-load"),
	}
}

type engineFunc func(ctx context.Context, svc quest.Service) (changed bool, err error)

// withEngine builds the engine, loads the save unless fresh is set, runs fn
// and saves when fn reports a change.
func withEngine(c *cli.Context, fresh bool, fn engineFunc) error {
	cfg := configFrom(c)
	ctn, ctx, err := container.New(c.Context, cfg, c.App.ErrWriter)
	if err != nil {
		return exitError(err)
	}
	defer ctn.Close()

	svc := ctn.QuestContainer.Service
	location := cfg.Location()

	if !fresh {
		if err := svc.Load(ctx, location); err != nil {
			return exitError(err)
		}
	}

	changed, err := fn(ctx, svc)
	if err != nil {
		return exitError(err)
	}
	if !changed {
		return nil
	}
	if err := svc.Save(ctx, location); err != nil {
		return exitError(err)
	}
	return nil
}

func exitError(err error) error {
	switch {
	case errors.Is(err, quest.ErrNotFound):
		return cli.Exit(fmt.Sprintf("File not found: %v", err), ExitNotFound)
	case errors.Is(err, quest.ErrInvalidGoal),
		errors.Is(err, quest.ErrInvalidIndex),
		errors.Is(err, config.ErrInvalidConfig):
		return cli.Exit(err.Error(), ExitInvalidInput)
	default:
		return cli.Exit(err.Error(), ExitInternalError)
	}
}

func initAction(c *cli.Context) error {
	cfg := configFrom(c)
	if !c.Bool("force") && !cfg.UsesDatabase() {
		if _, err := os.Stat(cfg.SaveFile); err == nil {
			return cli.Exit(fmt.Sprintf("%s already exists; use --force to overwrite", cfg.SaveFile), ExitInvalidInput)
		}
	}

	return withEngine(c, true, func(ctx context.Context, svc quest.Service) (bool, error) {
		if c.Bool("seed") {
			svc.SeedExamples(ctx)
		}
		fmt.Fprintf(c.App.Writer, "Saved to %s\n", cfg.Location())
		return true, nil
	})
}

func listAction(c *cli.Context) error {
	return withEngine(c, false, func(ctx context.Context, svc quest.Service) (bool, error) {
		printGoals(c.App.Writer, svc.ListGoals(ctx))
		return false, nil
	})
}

func printGoals(w io.Writer, goals []quest.GoalResponse) {
	if len(goals) == 0 {
		fmt.Fprintln(w, "No goals yet. Create one with the create command.")
		return
	}
	fmt.Fprintln(w, "Goals:")
	for _, g := range goals {
		fmt.Fprintf(w, "%d. %s %s - %s\n", g.Index, g.Status, g.Name, g.Description)
	}
}

func createCommand(kind goal.Kind, usage string, extra ...cli.Flag) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "name", Required: true, Usage: "goal name"},
		&cli.StringFlag{Name: "description", Usage: "goal description"},
		&cli.IntFlag{Name: "points", Usage: "points per event"},
	}

	return &cli.Command{
		Name:  strings.ToLower(string(kind)),
		Usage: usage,
		Flags: append(flags, extra...),
		Action: func(c *cli.Context) error {
			dto := quest.CreateGoalDTO{
				Kind:        kind,
				Name:        c.String("name"),
				Description: c.String("description"),
				Points:      c.Int("points"),
				Target:      c.Int("target"),
				Bonus:       c.Int("bonus"),
			}
			return withEngine(c, false, func(ctx context.Context, svc quest.Service) (bool, error) {
				created, err := svc.CreateGoal(ctx, dto)
				if err != nil {
					return false, err
				}
				fmt.Fprintf(c.App.Writer, "Goal created! (#%d)\n", created.Index)
				return true, nil
			})
		},
	}
}

func recordAction(c *cli.Context) error {
	index, err := strconv.Atoi(strings.TrimSpace(c.Args().First()))
	if err != nil {
		return cli.Exit("Invalid selection: goal number must be an integer", ExitInvalidInput)
	}

	return withEngine(c, false, func(ctx context.Context, svc quest.Service) (bool, error) {
		resp, err := svc.RecordEvent(ctx, index)
		if err != nil {
			return false, err
		}

		w := c.App.Writer
		if resp.Earned > 0 {
			fmt.Fprintf(w, "Recorded. You earned %d points.\n", resp.Earned)
		} else {
			fmt.Fprintln(w, "No points earned (goal may already be complete).")
		}
		for _, e := range resp.Events {
			fmt.Fprintf(w, "*** %s ***\n", e)
		}
		return true, nil
	})
}

func scoreAction(c *cli.Context) error {
	return withEngine(c, false, func(ctx context.Context, svc quest.Service) (bool, error) {
		summary := svc.ScoreSummary(ctx)

		w := c.App.Writer
		fmt.Fprintf(w, "Current score: %d\n", summary.Score)
		fmt.Fprintf(w, "Level: %d\n", summary.Level)
		if len(summary.Badges) == 0 {
			fmt.Fprintln(w, "Badges: (none yet)")
		} else {
			fmt.Fprintf(w, "Badges: %s\n", strings.Join(summary.Badges, ", "))
		}
		return false, nil
	})
}
