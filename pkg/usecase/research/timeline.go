package research

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/adapter"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/prompt"
	"github.com/m-mizutani/retrospect/pkg/utils/logging"
	"google.golang.org/genai"
)

// GenerateTimeline runs the timeline-image stage for an existing session.
// The first inline binary payload of the response wins; a response without
// one fails with ErrNoImagePayload and the previously attached image, if
// any, stays untouched. On success the prior image is replaced outright.
func (u *UseCase) GenerateTimeline(ctx context.Context, id model.SessionID, size model.ImageSize) (*model.ImageRef, error) {
	session, err := u.history.Get(id)
	if err != nil {
		return nil, err
	}

	p := prompt.Timeline(session.Result.SuggestedVisualPrompt, session.Config.Language, size)

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: "16:9",
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromText(p, genai.RoleUser),
	}

	resp, err := u.gemini.GenerateImage(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "timeline image call failed", goerr.V("session_id", id))
	}

	img := adapter.ResponseImage(resp)
	if img == nil {
		return nil, goerr.Wrap(model.ErrNoImagePayload, "response has no inline image part", goerr.V("session_id", id))
	}

	if _, err := u.history.AttachTimelineImage(ctx, id, img); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("timeline image generated",
		"session_id", id,
		"mime_type", img.MIMEType,
		"bytes", len(img.Data),
	)

	return img, nil
}
