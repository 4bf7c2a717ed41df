package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/usecase/records"
	"github.com/urfave/cli/v3"
)

func marksCommand() *cli.Command {
	return &cli.Command{
		Name:  "marks",
		Usage: "Track course results",
		Commands: []*cli.Command{
			marksAddCommand(),
			marksListCommand(),
		},
	}
}

func marksAddCommand() *cli.Command {
	var (
		cfg    config
		course string
		score  float64
		term   string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "course",
			Aliases:     []string{"c"},
			Usage:       "Course name",
			Required:    true,
			Destination: &course,
		},
		&cli.FloatFlag{
			Name:        "score",
			Aliases:     []string{"s"},
			Usage:       "Score out of 100",
			Required:    true,
			Destination: &score,
		},
		&cli.StringFlag{
			Name:        "term",
			Usage:       "Term label, e.g. 2026-spring",
			Destination: &term,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "add",
		Usage: "Record a course result",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			mark, err := records.New(repo).AddMark(ctx, course, score, term)
			if err != nil {
				return goerr.Wrap(err, "failed to add mark")
			}

			fmt.Fprintf(c.Root().Writer, "Mark recorded: %s (%s: %.1f)\n", mark.ID, mark.Course, mark.Score)
			return nil
		},
	}
}

func marksListCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List course results with the overall average",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			uc := records.New(repo)
			marks, err := uc.ListMarks(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list marks")
			}

			if len(marks) == 0 {
				fmt.Fprintf(c.Root().Writer, "No marks recorded\n")
				return nil
			}

			for _, m := range marks {
				fmt.Fprintf(c.Root().Writer, "%s\t%.1f\t%s\n", m.Course, m.Score, m.Term)
			}

			avg, ok, err := uc.AverageMark(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to compute average")
			}
			if ok {
				fmt.Fprintf(c.Root().Writer, "Average: %.1f\n", avg)
			}
			return nil
		},
	}
}
