package cli

import (
	"context"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "retrospect",
		Usage: "Explore the historical development of a research topic",
		Commands: []*cli.Command{
			newCommand(),
			listCommand(),
			showCommand(),
			deleteCommand(),
			clearCommand(),
			timelineCommand(),
			reviewCommand(),
			chatCommand(),
			exportCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}

// withSpinner shows a progress indicator while one stage call is in flight.
// It doubles as the busy affordance: the caller is blocked until the round
// trip completes, so the same artifact cannot be regenerated concurrently.
func withSpinner(label string, fn func() error) error {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " " + label
	sp.Start()
	defer sp.Stop()
	return fn()
}
