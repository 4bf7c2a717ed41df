package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "satchel",
		Usage: "Student lifestyle assistant",
		Commands: []*cli.Command{
			chatCommand(),
			todoCommand(),
			marksCommand(),
			expenseCommand(),
			moodCommand(),
			docsCommand(),
			historyCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
