package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/usecase/records"
	"github.com/urfave/cli/v3"
)

func moodCommand() *cli.Command {
	return &cli.Command{
		Name:  "mood",
		Usage: "Daily mood check-ins",
		Commands: []*cli.Command{
			moodAddCommand(),
			moodListCommand(),
		},
	}
}

func moodAddCommand() *cli.Command {
	var (
		cfg   config
		level int64
		note  string
	)

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "level",
			Aliases:     []string{"l"},
			Usage:       "Mood level from 1 (low) to 5 (high)",
			Required:    true,
			Destination: &level,
		},
		&cli.StringFlag{
			Name:        "note",
			Usage:       "Optional note",
			Destination: &note,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "add",
		Usage: "Record how today feels",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			mood, err := records.New(repo).AddMood(ctx, int(level), note)
			if err != nil {
				return goerr.Wrap(err, "failed to add mood")
			}

			fmt.Fprintf(c.Root().Writer, "Mood recorded: %s\n", strings.Repeat("*", mood.Level))
			return nil
		},
	}
}

func moodListCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List mood check-ins",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			moods, err := records.New(repo).ListMoods(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list moods")
			}

			if len(moods) == 0 {
				fmt.Fprintf(c.Root().Writer, "No mood check-ins yet\n")
				return nil
			}

			for _, m := range moods {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s\n",
					m.CreatedAt.Format("2006-01-02"), strings.Repeat("*", m.Level), m.Note)
			}
			return nil
		},
	}
}
