package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "show",
		Usage:     "Show one research session in detail",
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

			session, err := history.Get(id)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "Session:  %s\n", session.ID)
			fmt.Fprintf(w, "Created:  %s\n", session.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "Topic:    %s\n", session.Topic)
			fmt.Fprintf(w, "Config:   focus=%s count=%d language=%s style=%s\n",
				session.Config.Focus, session.Config.Count, session.Config.Language, session.Config.CitationStyle)
			fmt.Fprintf(w, "\n%s\n\n", session.Result.Summary)

			for i, a := range session.Result.Articles {
				fmt.Fprintf(w, "%2d. %s (%s)\n", i+1, a.Title, a.PublicationDate)
				fmt.Fprintf(w, "    %s\n", a.Authors)
				if a.URL != "" {
					fmt.Fprintf(w, "    %s\n", a.URL)
				}
			}

			if session.TimelineImage != nil {
				fmt.Fprintf(w, "\nTimeline image: %s (%d bytes)\n",
					session.TimelineImage.MIMEType, len(session.TimelineImage.Data))
			}
			if session.LiteratureReview != "" {
				fmt.Fprintf(w, "\nLiterature review:\n%s\n", session.LiteratureReview)
			}
			return nil
		},
	}
}
