// Package chat runs the follow-up conversation over one research session.
// The message sequence is append-only, seeded with a synthetic greeting, and
// scoped to the active session: switching sessions means building a new
// chat session from the newly active session's data.
package chat

import (
	"context"
	"slices"

	"github.com/m-mizutani/retrospect/pkg/adapter"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/prompt"
	"github.com/m-mizutani/retrospect/pkg/utils/logging"
	"google.golang.org/genai"
)

// apology is appended instead of propagating a turn failure, keeping the
// conversation usable.
const apology = "Sorry, I ran into a problem answering that. Please try asking again."

// Session is a conversation over one research session's context
type Session struct {
	gemini   adapter.Gemini
	system   string
	messages []model.Message
}

// New seeds a conversation for the given research session. The system
// instruction is rebuilt from the session's discovery result; nothing is
// carried over from any previous conversation.
func New(gemini adapter.Gemini, session *model.Session) *Session {
	return &Session{
		gemini: gemini,
		system: prompt.ChatSystem(session.Result, session.Config.Language),
		messages: []model.Message{
			{
				ID:   model.NewMessageID(),
				Role: model.RoleAssistant,
				Text: prompt.Greeting(session.Topic),
			},
		},
	}
}

// Messages returns the conversation so far, greeting included
func (s *Session) Messages() []model.Message {
	return slices.Clone(s.messages)
}

// Send appends the user turn, asks the model with the full conversational
// history, and appends the assistant turn. A failed or empty model call is
// absorbed into a fixed apology message; Send never fails.
func (s *Session) Send(ctx context.Context, text string) model.Message {
	s.messages = append(s.messages, model.Message{
		ID:   model.NewMessageID(),
		Role: model.RoleUser,
		Text: text,
	})

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(s.system, ""),
	}

	contents := make([]*genai.Content, 0, len(s.messages))
	for _, m := range s.messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == model.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}

	reply := apology
	resp, err := s.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		logging.From(ctx).Warn("chat turn failed, answering with fallback", "error", err)
	} else if text := adapter.ResponseText(resp); text != "" {
		reply = text
	} else {
		logging.From(ctx).Warn("chat turn returned no text, answering with fallback")
	}

	message := model.Message{
		ID:   model.NewMessageID(),
		Role: model.RoleAssistant,
		Text: reply,
	}
	s.messages = append(s.messages, message)

	return message
}
