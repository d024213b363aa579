package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/urfave/cli/v3"
)

func deleteCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete one research session",
		ArgsUsage: "<session-id>",
		Flags:     globalFlags(&cfg),
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

			remaining, err := history.Delete(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Deleted %s, %d sessions remain\n", id, len(remaining))
			return nil
		},
	}
}

func clearCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "clear",
		Usage: "Delete every stored research session",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggingContext(ctx)

			history, closeStore, err := cfg.newHistory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			history.Clear(ctx)
			fmt.Fprintf(c.Root().Writer, "History cleared\n")
			return nil
		},
	}
}
