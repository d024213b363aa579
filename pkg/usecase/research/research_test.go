package research_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/retrospect/pkg/adapter"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/repository"
	"github.com/m-mizutani/retrospect/pkg/usecase/research"
	"google.golang.org/genai"
)

type mockStorage struct {
	data map[string][]byte
}

func newMockStorage() *mockStorage {
	return &mockStorage{data: map[string][]byte{}}
}

func (m *mockStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, goerr.Wrap(adapter.ErrKeyNotFound, "missing")
	}
	return data, nil
}

func (m *mockStorage) Set(ctx context.Context, key string, data []byte) error {
	m.data[key] = data
	return nil
}

// mockGemini replays canned responses and records requests
type mockGemini struct {
	textResp  *genai.GenerateContentResponse
	textErr   error
	imageResp *genai.GenerateContentResponse
	imageErr  error

	textConfigs   []*genai.GenerateContentConfig
	imageConfigs  []*genai.GenerateContentConfig
	imageContents [][]*genai.Content
}

func (m *mockGemini) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.textConfigs = append(m.textConfigs, config)
	return m.textResp, m.textErr
}

func (m *mockGemini) GenerateImage(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.imageConfigs = append(m.imageConfigs, config)
	m.imageContents = append(m.imageContents, contents)
	return m.imageResp, m.imageErr
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func newUseCase(t *testing.T, gemini *mockGemini) (*research.UseCase, *repository.History) {
	t.Helper()
	history, err := repository.New(context.Background(), newMockStorage())
	gt.NoError(t, err)
	return research.New(history, gemini), history
}

const discoveryJSON = `{
  "topic": "CRISPR",
  "summary": "from yogurt cultures to gene editing",
  "suggestedVisualPrompt": "a winding road of CRISPR milestones",
  "articles": [
    {"title": "Unusual repeats", "authors": "Ishino, Y.", "publication_date": "1987", "ai_summary": "first observation", "significance": "accidental discovery"},
    {"title": "A programmable dual-RNA-guided DNA endonuclease", "authors": "Jinek, M.; Doudna, J.; Charpentier, E.", "journal": "Science", "publication_date": "2012-06-28", "ai_summary": "the key paper", "significance": "founded genome editing", "url": "https://example.org/jinek2012"}
  ]
}`

func TestDiscoverCreatesSession(t *testing.T) {
	ctx := context.Background()
	gemini := &mockGemini{textResp: textResponse("Sure! ```json\n" + discoveryJSON + "\n```")}
	uc, history := newUseCase(t, gemini)

	session, err := uc.Discover(ctx, "CRISPR", model.GenerationConfig{
		Focus:    model.FocusRecent,
		Count:    10,
		Language: model.LanguageEnglish,
	})
	gt.NoError(t, err)

	gt.Value(t, session.Topic).Equal("CRISPR")
	gt.Value(t, session.Result.Topic).Equal("CRISPR")
	gt.Value(t, len(session.Result.Articles)).Equal(2)
	// article order preserved verbatim
	gt.Value(t, session.Result.Articles[0].Title).Equal("Unusual repeats")

	stored, err := history.Get(session.ID)
	gt.NoError(t, err)
	gt.Value(t, stored.Config.Focus).Equal(model.FocusRecent)

	// discovery requests carry search grounding and a thinking budget
	gt.Value(t, len(gemini.textConfigs)).Equal(1)
	cfg := gemini.textConfigs[0]
	gt.Value(t, len(cfg.Tools)).Equal(1)
	gt.NotNil(t, cfg.Tools[0].GoogleSearch)
	gt.NotNil(t, cfg.ThinkingConfig)
}

func TestDiscoverMalformedOutput(t *testing.T) {
	ctx := context.Background()
	gemini := &mockGemini{textResp: textResponse("I cannot help.")}
	uc, history := newUseCase(t, gemini)

	_, err := uc.Discover(ctx, "CRISPR", model.DefaultGenerationConfig())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrMalformedOutput))

	// no partial session persisted
	gt.Value(t, len(history.List())).Equal(0)
}

func TestDiscoverEmptyResponse(t *testing.T) {
	ctx := context.Background()
	gemini := &mockGemini{textResp: textResponse("")}
	uc, history := newUseCase(t, gemini)

	_, err := uc.Discover(ctx, "CRISPR", model.DefaultGenerationConfig())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrEmptyResponse))
	gt.Value(t, len(history.List())).Equal(0)
}

func TestDiscoverTransportFailure(t *testing.T) {
	ctx := context.Background()
	transportErr := errors.New("connection reset")
	gemini := &mockGemini{textErr: transportErr}
	uc, history := newUseCase(t, gemini)

	_, err := uc.Discover(ctx, "CRISPR", model.DefaultGenerationConfig())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, transportErr))
	gt.Value(t, len(history.List())).Equal(0)
}

func TestDiscoverCapsArticleCount(t *testing.T) {
	ctx := context.Background()
	long := `{"topic":"t","summary":"s","suggestedVisualPrompt":"v","articles":[
	  {"title":"1"},{"title":"2"},{"title":"3"},{"title":"4"},{"title":"5"},{"title":"6"},{"title":"7"}]}`
	gemini := &mockGemini{textResp: textResponse(long)}
	uc, _ := newUseCase(t, gemini)

	session, err := uc.Discover(ctx, "t", model.GenerationConfig{Count: 5, Focus: model.FocusBalanced, Language: model.LanguageEnglish})
	gt.NoError(t, err)
	gt.Value(t, len(session.Result.Articles)).Equal(5)
	gt.Value(t, session.Result.Articles[0].Title).Equal("1")
}

func seedSession(t *testing.T, uc *research.UseCase, gemini *mockGemini) *model.Session {
	t.Helper()
	gemini.textResp = textResponse(discoveryJSON)
	session, err := uc.Discover(context.Background(), "CRISPR", model.DefaultGenerationConfig())
	gt.NoError(t, err)
	return session
}

func TestGenerateTimeline(t *testing.T) {
	ctx := context.Background()
	gemini := &mockGemini{}
	uc, history := newUseCase(t, gemini)
	session := seedSession(t, uc, gemini)

	gemini.imageResp = &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "here you go"},
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{0x89}}},
			}}},
		},
	}

	img, err := uc.GenerateTimeline(ctx, session.ID, model.Size2K)
	gt.NoError(t, err)
	gt.Value(t, img.MIMEType).Equal("image/png")

	stored, err := history.Get(session.ID)
	gt.NoError(t, err)
	gt.Value(t, stored.TimelineImage.MIMEType).Equal("image/png")
	gt.Value(t, stored.Result.SuggestedVisualPrompt).Equal("a winding road of CRISPR milestones")

	gt.Value(t, len(gemini.imageConfigs)).Equal(1)
	gt.Value(t, gemini.imageConfigs[0].ImageConfig.AspectRatio).Equal("16:9")

	// the resolution tier is carried by the prompt text
	sent := gemini.imageContents[0][0].Parts[0].Text
	gt.True(t, strings.Contains(sent, "a winding road of CRISPR milestones"))
	gt.True(t, strings.Contains(sent, "high detail"))
	gt.False(t, strings.Contains(sent, "standard detail"))
}

func TestGenerateTimelineNoImagePayload(t *testing.T) {
	ctx := context.Background()
	gemini := &mockGemini{}
	uc, history := newUseCase(t, gemini)
	session := seedSession(t, uc, gemini)

	// attach an image first, then fail a regeneration
	gemini.imageResp = &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1}}},
			}}},
		},
	}
	_, err := uc.GenerateTimeline(ctx, session.ID, model.Size1K)
	gt.NoError(t, err)

	gemini.imageResp = textResponse("sorry, text only")
	_, err = uc.GenerateTimeline(ctx, session.ID, model.Size1K)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrNoImagePayload))

	// the previously attached artifact is untouched
	stored, err := history.Get(session.ID)
	gt.NoError(t, err)
	gt.NotNil(t, stored.TimelineImage)
	gt.Value(t, stored.TimelineImage.MIMEType).Equal("image/png")
}

func TestGenerateTimelineUnknownSession(t *testing.T) {
	gemini := &mockGemini{}
	uc, _ := newUseCase(t, gemini)

	_, err := uc.GenerateTimeline(context.Background(), model.NewSessionID(), model.Size1K)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrSessionNotFound))
}

func TestGenerateReviewReplacesPrior(t *testing.T) {
	ctx := context.Background()
	gemini := &mockGemini{}
	uc, history := newUseCase(t, gemini)
	session := seedSession(t, uc, gemini)

	gemini.textResp = textResponse("The field began [1]...")
	review, err := uc.GenerateReview(ctx, session.ID, model.StyleNumeric)
	gt.NoError(t, err)
	gt.Value(t, review).Equal("The field began [1]...")

	gemini.textResp = textResponse("According to Jinek et al. (2012)...")
	review, err = uc.GenerateReview(ctx, session.ID, model.StyleAPA)
	gt.NoError(t, err)

	stored, err := history.Get(session.ID)
	gt.NoError(t, err)
	gt.Value(t, stored.LiteratureReview).Equal(review)
	// discovery result unchanged by review regeneration
	gt.Value(t, len(stored.Result.Articles)).Equal(2)
}

func TestGenerateReviewEmptyResponse(t *testing.T) {
	ctx := context.Background()
	gemini := &mockGemini{}
	uc, history := newUseCase(t, gemini)
	session := seedSession(t, uc, gemini)

	gemini.textResp = textResponse("")
	_, err := uc.GenerateReview(ctx, session.ID, model.StyleAPA)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrEmptyResponse))

	stored, err := history.Get(session.ID)
	gt.NoError(t, err)
	gt.Value(t, stored.LiteratureReview).Equal("")
}
