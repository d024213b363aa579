package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/usecase/research"
	"github.com/urfave/cli/v3"
)

func reviewCommand() *cli.Command {
	var (
		cfg   config
		style string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "style",
			Aliases:     []string{"s"},
			Usage:       "Citation style (apa, mla, chicago, numeric); defaults to the session's configured style",
			Destination: &style,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:      "review",
		Usage:     "Generate (or regenerate) the literature review of a session",
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

			uc := research.New(history, gemini)

			// the style is a fresh choice per regeneration
			chosen := model.CitationStyle(style)
			if style == "" {
				session, err := history.Get(id)
				if err != nil {
					return err
				}
				chosen = session.Config.CitationStyle
			}

			var review string
			if err := withSpinner("writing literature review...", func() error {
				review, err = uc.GenerateReview(ctx, id, chosen)
				return err
			}); err != nil {
				return goerr.Wrap(err, "review generation failed")
			}

			fmt.Fprintf(c.Root().Writer, "%s\n", review)
			return nil
		},
	}
}
