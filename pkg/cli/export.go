package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/usecase/research"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var (
		cfg    config
		output string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Path to write the markdown document (default stdout)",
			Destination: &output,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "export",
		Usage:     "Export a session as a single markdown document",
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

			session, err := history.Get(id)
			if err != nil {
				return err
			}

			doc := research.Export(session)

			if output == "" {
				fmt.Fprint(c.Root().Writer, doc)
				return nil
			}

			if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
				return goerr.Wrap(err, "failed to write document", goerr.V("path", output))
			}
			fmt.Fprintf(c.Root().Writer, "Exported to %s\n", output)
			return nil
		},
	}
}
