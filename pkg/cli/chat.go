package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/adapter"
	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/repository"
	"github.com/t-okazaki/satchel/pkg/usecase/assistant"
	"github.com/t-okazaki/satchel/pkg/usecase/document"
	"github.com/urfave/cli/v3"
)

func chatCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, llmFlags(&cfg)...)
	flags = append(flags, searchFlags(&cfg)...)
	flags = append(flags, docFlags(&cfg)...)

	return &cli.Command{
		Name:  "chat",
		Usage: "Talk to the assistant",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)
			w := c.Root().Writer

			invoker, err := cfg.newInvoker(ctx)
			if err != nil {
				return err
			}

			input := assistant.NewInput{
				Invoker: invoker,
				Policy: assistant.Policy{
					EnrichWhileGrounded: cfg.enrichWhileGrounded,
				},
			}

			vocab, err := cfg.newVocabulary()
			if err != nil {
				return err
			}
			input.Vocabulary = vocab

			videos, err := cfg.newVideoSearcher(ctx)
			if err != nil {
				return err
			}
			if videos != nil {
				input.Videos = videos
			}

			places, err := cfg.newPlaces()
			if err != nil {
				return err
			}
			if places != nil {
				input.Places = places
				input.Locator = places
			}

			// Persistence and grounding need the document database and the
			// bucket; without them the chat still works, in-memory only.
			var repo *repository.Firestore
			var store adapter.Storage
			if cfg.project != "" && cfg.bucket != "" {
				repo, err = cfg.newRepository(ctx)
				if err != nil {
					return err
				}
				defer repo.Close()

				store, err = cfg.newStorage(ctx)
				if err != nil {
					return err
				}

				input.Repo = repo
				input.Storage = store
				input.Docs = document.New(repo, store, cfg.newExtractor())
			}

			session, err := assistant.New(input)
			if err != nil {
				return goerr.Wrap(err, "failed to create chat session")
			}

			rl, err := readline.New("> ")
			if err != nil {
				return goerr.Wrap(err, "failed to initialize input")
			}
			defer rl.Close()

			fmt.Fprintf(w, "Chat session started. Type 'exit' to quit, '/docs' to list documents, '/doc <id>' to ground on one.\n")

			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return goerr.Wrap(err, "failed to read input")
				}

				message := strings.TrimSpace(line)
				if message == "" {
					continue
				}
				if message == "exit" {
					break
				}

				if strings.HasPrefix(message, "/") {
					if err := handleDirective(ctx, w, session, input.Docs, message); err != nil {
						fmt.Fprintf(w, "error: %s\n", err.Error())
					}
					continue
				}

				sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				sp.Suffix = " thinking..."
				sp.Start()
				turn := session.Send(ctx, message)
				sp.Stop()

				printTurn(w, turn)
			}

			fmt.Fprintf(w, "\nChat session completed\n")
			return nil
		},
	}
}

// handleDirective processes in-REPL commands starting with "/"
func handleDirective(ctx context.Context, w io.Writer, session *assistant.Session, docs assistant.DocumentSource, message string) error {
	switch {
	case message == "/docs":
		lister, ok := docs.(*document.UseCase)
		if !ok || lister == nil {
			return goerr.New("document store is not configured (set --project and --bucket)")
		}
		list, err := lister.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintf(w, "No documents ingested yet. Use 'satchel docs add <file>'.\n")
			return nil
		}
		for _, d := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.FileName, d.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil

	case message == "/doc off":
		session.ClearDocument()
		fmt.Fprintf(w, "Left document mode.\n")
		return nil

	case strings.HasPrefix(message, "/doc "):
		id := strings.TrimSpace(strings.TrimPrefix(message, "/doc "))
		if id == "" {
			return goerr.New("document id is required")
		}
		if err := session.UseDocument(ctx, model.DocumentID(id)); err != nil {
			return err
		}
		fmt.Fprintf(w, "Grounding on %q. Questions are now answered from this document.\n", session.GroundedOn())
		return nil

	default:
		return goerr.New("unknown directive", goerr.V("directive", message))
	}
}

func printTurn(w io.Writer, turn *model.Turn) {
	fmt.Fprintf(w, "%s\n", turn.Text)

	for _, v := range turn.Videos {
		fmt.Fprintf(w, "  [video] %s — %s\n          %s\n", v.Title, v.ChannelName, v.WatchURL)
	}
	for _, p := range turn.Places {
		if p.Rating > 0 {
			fmt.Fprintf(w, "  [place] %s (%.1f) — %s\n          %s\n", p.Name, p.Rating, p.Address, p.MapsURL)
		} else {
			fmt.Fprintf(w, "  [place] %s — %s\n          %s\n", p.Name, p.Address, p.MapsURL)
		}
	}
}
