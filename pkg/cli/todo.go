package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/usecase/records"
	"github.com/urfave/cli/v3"
)

func todoCommand() *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "Manage tasks",
		Commands: []*cli.Command{
			todoAddCommand(),
			todoListCommand(),
			todoDoneCommand(),
		},
	}
}

func todoAddCommand() *cli.Command {
	var (
		cfg   config
		title string
		due   string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Aliases:     []string{"t"},
			Usage:       "Task title",
			Required:    true,
			Destination: &title,
		},
		&cli.StringFlag{
			Name:        "due",
			Usage:       "Due date (YYYY-MM-DD)",
			Destination: &due,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "add",
		Usage: "Add a task",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			var duePtr *time.Time
			if due != "" {
				parsed, err := time.Parse("2006-01-02", due)
				if err != nil {
					return goerr.Wrap(err, "invalid due date", goerr.V("due", due))
				}
				duePtr = &parsed
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			todo, err := records.New(repo).AddTodo(ctx, title, duePtr)
			if err != nil {
				return goerr.Wrap(err, "failed to add todo")
			}

			fmt.Fprintf(c.Root().Writer, "Todo created: %s\n", todo.ID)
			return nil
		},
	}
}

func todoListCommand() *cli.Command {
	var (
		cfg config
		all bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "all",
			Aliases:     []string{"a"},
			Usage:       "Include completed tasks",
			Destination: &all,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "list",
		Usage: "List tasks",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			todos, err := records.New(repo).ListTodos(ctx, all)
			if err != nil {
				return goerr.Wrap(err, "failed to list todos")
			}

			if len(todos) == 0 {
				fmt.Fprintf(c.Root().Writer, "No tasks found\n")
				return nil
			}

			for _, t := range todos {
				mark := " "
				if t.Done {
					mark = "x"
				}
				dueStr := ""
				if t.Due != nil {
					dueStr = t.Due.Format("2006-01-02")
				}
				fmt.Fprintf(c.Root().Writer, "[%s] %s\t%s\t%s\n", mark, t.ID, t.Title, dueStr)
			}
			return nil
		},
	}
}

func todoDoneCommand() *cli.Command {
	var (
		cfg config
		id  string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "id",
			Usage:       "Todo ID to complete",
			Required:    true,
			Destination: &id,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "done",
		Usage: "Mark a task as completed",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			todo, err := records.New(repo).CompleteTodo(ctx, model.TodoID(id))
			if err != nil {
				return goerr.Wrap(err, "failed to complete todo")
			}

			fmt.Fprintf(c.Root().Writer, "Completed: %s\n", todo.Title)
			return nil
		},
	}
}
