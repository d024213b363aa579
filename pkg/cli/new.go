package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/usecase/research"
	"github.com/urfave/cli/v3"
)

func newCommand() *cli.Command {
	var (
		cfg      config
		focus    string
		count    int64
		language string
		style    string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "focus",
			Aliases:     []string{"f"},
			Usage:       "Article selection focus (emphasize-history, balanced, emphasize-recent)",
			Value:       string(model.FocusBalanced),
			Destination: &focus,
		},
		&cli.IntFlag{
			Name:        "count",
			Aliases:     []string{"n"},
			Usage:       "Target article count (5, 10, 15 or 20)",
			Value:       model.DefaultCount,
			Destination: &count,
		},
		&cli.StringFlag{
			Name:        "language",
			Aliases:     []string{"l"},
			Usage:       "Language for generated prose (en, ja, zh, es, fr, de)",
			Value:       string(model.LanguageEnglish),
			Destination: &language,
		},
		&cli.StringFlag{
			Name:        "style",
			Usage:       "Default citation style for later reviews (apa, mla, chicago, numeric)",
			Value:       string(model.StyleAPA),
			Destination: &style,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:      "new",
		Usage:     "Discover the research history of a topic and start a session",
		ArgsUsage: "<topic>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			topic := c.Args().First()
			if topic == "" {
				return goerr.New("topic is required")
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

			genCfg := model.GenerationConfig{
				Focus:         model.Focus(focus),
				Count:         int(count),
				Language:      model.Language(language),
				CitationStyle: model.CitationStyle(style),
			}

			var session *model.Session
			if err := withSpinner("discovering research history...", func() error {
				session, err = uc.Discover(ctx, topic, genCfg)
				return err
			}); err != nil {
				return goerr.Wrap(err, "discovery failed")
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "Session %s created\n\n", session.ID)
			fmt.Fprintf(w, "%s\n\n", session.Result.Summary)
			for i, a := range session.Result.Articles {
				fmt.Fprintf(w, "%2d. %s (%s) - %s\n", i+1, a.Title, a.PublicationDate, a.Authors)
			}
			return nil
		},
	}
}
