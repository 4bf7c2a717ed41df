package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/usecase/records"
	"github.com/urfave/cli/v3"
)

func expenseCommand() *cli.Command {
	return &cli.Command{
		Name:  "expense",
		Usage: "Track spending",
		Commands: []*cli.Command{
			expenseAddCommand(),
			expenseListCommand(),
		},
	}
}

func expenseAddCommand() *cli.Command {
	var (
		cfg      config
		amount   float64
		category string
		note     string
	)

	flags := []cli.Flag{
		&cli.FloatFlag{
			Name:        "amount",
			Aliases:     []string{"a"},
			Usage:       "Amount spent",
			Required:    true,
			Destination: &amount,
		},
		&cli.StringFlag{
			Name:        "category",
			Aliases:     []string{"c"},
			Usage:       "Spending category, e.g. food, transport, books",
			Required:    true,
			Destination: &category,
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
		Usage: "Record an expense",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			expense, err := records.New(repo).AddExpense(ctx, amount, category, note)
			if err != nil {
				return goerr.Wrap(err, "failed to add expense")
			}

			fmt.Fprintf(c.Root().Writer, "Expense recorded: %s (%.2f, %s)\n", expense.ID, expense.Amount, expense.Category)
			return nil
		},
	}
}

func expenseListCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List expenses with per-category totals",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			uc := records.New(repo)
			expenses, err := uc.ListExpenses(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list expenses")
			}

			if len(expenses) == 0 {
				fmt.Fprintf(c.Root().Writer, "No expenses recorded\n")
				return nil
			}

			for _, e := range expenses {
				fmt.Fprintf(c.Root().Writer, "%s\t%.2f\t%s\t%s\n",
					e.CreatedAt.Format("2006-01-02"), e.Amount, e.Category, e.Note)
			}

			totals, err := uc.ExpenseTotals(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to compute totals")
			}

			categories := make([]string, 0, len(totals))
			for cat := range totals {
				categories = append(categories, cat)
			}
			sort.Strings(categories)

			fmt.Fprintf(c.Root().Writer, "Totals:\n")
			for _, cat := range categories {
				fmt.Fprintf(c.Root().Writer, "  %s\t%.2f\n", cat, totals[cat])
			}
			return nil
		},
	}
}
