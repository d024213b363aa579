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

// GenerateReview runs the literature-review stage for an existing session.
// The citation style is a per-call parameter and may differ from the style
// chosen at discovery time. On success the prior review is replaced
// outright.
func (u *UseCase) GenerateReview(ctx context.Context, id model.SessionID, style model.CitationStyle) (string, error) {
	session, err := u.history.Get(id)
	if err != nil {
		return "", err
	}

	req := prompt.Review(session.Result, session.Config.Language, style)

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.Instruction, ""),
	}
	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	resp, err := u.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return "", goerr.Wrap(err, "review call failed", goerr.V("session_id", id))
	}

	review := adapter.ResponseText(resp)
	if review == "" {
		return "", goerr.Wrap(model.ErrEmptyResponse, "review stage got no text", goerr.V("session_id", id))
	}

	if _, err := u.history.AttachReview(ctx, id, review); err != nil {
		return "", err
	}

	logging.From(ctx).Info("literature review generated",
		"session_id", id,
		"style", style.OrDefault(),
		"chars", len(review),
	)

	return review, nil
}
