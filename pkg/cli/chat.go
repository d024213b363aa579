package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/usecase/chat"
	"github.com/urfave/cli/v3"
)

func chatCommand() *cli.Command {
	var cfg config

	flags := append(globalFlags(&cfg), llmFlags(&cfg)...)

	return &cli.Command{
		Name:      "chat",
		Usage:     "Ask follow-up questions about a research session",
		ArgsUsage: "<session-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			id := model.SessionID(c.Args().First())
			if id == "" {
				return goerr.New("session-id is required")
			}

			ctx = cfg.loggingContext(ctx)

			history, closeStore, err := cfg.newHistory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			gemini, err := cfg.newGemini(ctx)
			if err != nil {
				return err
			}

			research, err := history.Get(id)
			if err != nil {
				return err
			}

			session := chat.New(gemini, research)

			w := c.Root().Writer
			for _, m := range session.Messages() {
				fmt.Fprintf(w, "%s\n", m.Text)
			}
			fmt.Fprintf(w, "\nType 'exit' or press Ctrl-D to quit.\n")

			rl, err := readline.New("> ")
			if err != nil {
				return goerr.Wrap(err, "failed to open input")
			}
			defer rl.Close()

			for {
				line, err := rl.Readline()
				if err != nil {
					if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
						break
					}
					return goerr.Wrap(err, "failed to read input")
				}
				if line == "exit" {
					break
				}
				if line == "" {
					continue
				}

				var reply model.Message
				_ = withSpinner("thinking...", func() error {
					reply = session.Send(ctx, line)
					return nil
				})
				fmt.Fprintf(w, "%s\n", reply.Text)
			}

			fmt.Fprintf(w, "\nChat session completed\n")
			return nil
		},
	}
}
