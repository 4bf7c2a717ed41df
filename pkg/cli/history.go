package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/usecase/assistant"
	"github.com/urfave/cli/v3"
)

func historyCommand() *cli.Command {
	var (
		cfg   config
		id    string
		limit int64
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "id",
			Usage:       "Conversation ID to print in full",
			Destination: &id,
		},
		&cli.IntFlag{
			Name:        "limit",
			Aliases:     []string{"n"},
			Usage:       "Maximum number of conversations to list",
			Value:       20,
			Destination: &limit,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "history",
		Usage: "List stored conversations, or print one",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			if id != "" {
				storage, err := cfg.newStorage(ctx)
				if err != nil {
					return err
				}

				turns, err := assistant.LoadTurns(ctx, storage, model.ConversationID(id))
				if err != nil {
					return goerr.Wrap(err, "failed to load conversation")
				}

				for _, turn := range turns {
					fmt.Fprintf(c.Root().Writer, "[%s] %s\n", turn.Role, turn.Text)
				}
				return nil
			}

			convs, err := repo.ListConversations(ctx, int(limit))
			if err != nil {
				return goerr.Wrap(err, "failed to list conversations")
			}

			if len(convs) == 0 {
				fmt.Fprintf(c.Root().Writer, "No conversations stored yet\n")
				return nil
			}

			for _, conv := range convs {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s\n",
					conv.ID, conv.Title, conv.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
