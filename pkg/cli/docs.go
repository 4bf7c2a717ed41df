package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/usecase/document"
	"github.com/urfave/cli/v3"
)

func docsCommand() *cli.Command {
	return &cli.Command{
		Name:  "docs",
		Usage: "Manage grounding documents",
		Commands: []*cli.Command{
			docsAddCommand(),
			docsListCommand(),
		},
	}
}

func docsAddCommand() *cli.Command {
	var (
		cfg   config
		input string
		owner string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to the PDF file to ingest",
			Required:    true,
			Destination: &input,
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Owner label for the document",
			Sources:     cli.EnvVars("SATCHEL_OWNER"),
			Destination: &owner,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, docFlags(&cfg)...)

	return &cli.Command{
		Name:  "add",
		Usage: "Extract a document's text and store it for grounding",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			storage, err := cfg.newStorage(ctx)
			if err != nil {
				return err
			}

			uc := document.New(repo, storage, cfg.newExtractor())
			doc, err := uc.Ingest(ctx, input, owner)
			if err != nil {
				return goerr.Wrap(err, "failed to ingest document")
			}

			fmt.Fprintf(c.Root().Writer, "Document ingested: %s (%s, %d pages)\n", doc.ID, doc.FileName, doc.Pages)
			return nil
		},
	}
}

func docsListCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List ingested documents",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			docs, err := repo.ListDocuments(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list documents")
			}

			if len(docs) == 0 {
				fmt.Fprintf(c.Root().Writer, "No documents ingested yet\n")
				return nil
			}

			for _, d := range docs {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s\n",
					d.ID, d.FileName, d.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
