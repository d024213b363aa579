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

// extensions for known image MIME types; anything else keeps .bin
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

func timelineCommand() *cli.Command {
	var (
		cfg    config
		size   string
		output string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "size",
			Aliases:     []string{"s"},
			Usage:       "Resolution tier (1K, 2K, 4K)",
			Value:       string(model.Size1K),
			Destination: &size,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Path to write the image file (default timeline-<session-id>.<ext>)",
			Destination: &output,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:      "timeline",
		Usage:     "Generate (or regenerate) the illustrated timeline image of a session",
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

			var img *model.ImageRef
			if err := withSpinner("rendering timeline...", func() error {
				img, err = uc.GenerateTimeline(ctx, id, model.ImageSize(size))
				return err
			}); err != nil {
				return goerr.Wrap(err, "timeline generation failed")
			}

			path := output
			if path == "" {
				ext, ok := imageExtensions[img.MIMEType]
				if !ok {
					ext = ".bin"
				}
				path = fmt.Sprintf("timeline-%s%s", id, ext)
			}
			if err := os.WriteFile(path, img.Data, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write image file", goerr.V("path", path))
			}

			fmt.Fprintf(c.Root().Writer, "Timeline image written to %s (%s, %d bytes)\n", path, img.MIMEType, len(img.Data))
			return nil
		},
	}
}
