package adapter

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/model"
	"google.golang.org/genai"
)

// Gemini is the generative-model transport. Text stages and the image stage
// run against different models, hence the split methods.
type Gemini interface {
	GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImage(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiClient struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

type GeminiOption func(*GeminiClient)

func WithTextModel(model string) GeminiOption {
	return func(g *GeminiClient) {
		g.textModel = model
	}
}

func WithImageModel(model string) GeminiOption {
	return func(g *GeminiClient) {
		g.imageModel = model
	}
}

// NewGemini creates a Gemini client from an explicitly supplied API key.
// The credential is a constructor parameter on purpose: a missing key is
// detected here, before any call is made, not deep inside a stage.
func NewGemini(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(model.ErrCredentialMissing, "api key is required to create gemini client")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client")
	}

	g := &GeminiClient{
		client:     client,
		textModel:  "gemini-2.5-flash",
		imageModel: "gemini-2.5-flash-image",
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.textModel, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate content", goerr.V("model", g.textModel))
	}
	return resp, nil
}

func (g *GeminiClient) GenerateImage(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.imageModel, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate image", goerr.V("model", g.imageModel))
	}
	return resp, nil
}

// ResponseText joins the text parts of the first candidate. Returns an empty
// string for a nil or textless response.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			parts = append(parts, part.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// ResponseImage returns the first inline binary payload of the first
// candidate, or nil when the response carries none.
func ResponseImage(resp *genai.GenerateContentResponse) *model.ImageRef {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &model.ImageRef{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			}
		}
	}
	return nil
}
