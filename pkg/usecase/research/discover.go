package research

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/adapter"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/prompt"
	"github.com/m-mizutani/retrospect/pkg/recovery"
	"github.com/m-mizutani/retrospect/pkg/utils/logging"
	"google.golang.org/genai"
)

// discoveryThinkingBudget is the extended-reasoning budget for the
// search-augmented discovery call.
const discoveryThinkingBudget = int32(8192)

// Discover runs the discovery stage: compile the request, call the model
// with search grounding and extended reasoning, recover the structured
// result, and create the session. On any failure no session is created and
// no partial state is stored.
func (u *UseCase) Discover(ctx context.Context, topic string, cfg model.GenerationConfig) (*model.Session, error) {
	cfg = cfg.Normalize()
	req := prompt.Discovery(cfg, topic)

	budget := discoveryThinkingBudget
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.Instruction, ""),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: false,
			ThinkingBudget:  &budget,
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	resp, err := u.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "discovery call failed", goerr.V("topic", topic))
	}

	var result model.DiscoveryResult
	if err := recovery.Unmarshal(adapter.ResponseText(resp), &result); err != nil {
		return nil, goerr.Wrap(err, "failed to recover discovery result", goerr.V("topic", topic))
	}

	// the model chose the order; cap length, never re-sort
	if len(result.Articles) > cfg.Count {
		result.Articles = result.Articles[:cfg.Count]
	}

	session := &model.Session{
		ID:        model.NewSessionID(),
		CreatedAt: time.Now(),
		Topic:     topic,
		Result:    &result,
		Config:    cfg,
	}
	u.history.Insert(ctx, session)

	logging.From(ctx).Info("discovery completed",
		"session_id", session.ID,
		"topic", topic,
		"articles", len(result.Articles),
	)

	return session, nil
}
