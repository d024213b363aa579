package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List stored research sessions, newest first",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggingContext(ctx)

			history, closeStore, err := cfg.newHistory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			sessions := history.List()
			w := c.Root().Writer
			if len(sessions) == 0 {
				fmt.Fprintf(w, "No sessions stored\n")
				return nil
			}

			for _, s := range sessions {
				artifacts := ""
				if s.TimelineImage != nil {
					artifacts += " [image]"
				}
				if s.LiteratureReview != "" {
					artifacts += " [review]"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d articles%s\n",
					s.ID,
					s.CreatedAt.Format("2006-01-02 15:04:05"),
					s.Topic,
					len(s.Result.Articles),
					artifacts,
				)
			}
			return nil
		},
	}
}
