package prompt_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/prompt"
)

func TestDiscoveryFocusBlocks(t *testing.T) {
	cfg := model.GenerationConfig{
		Focus:    model.FocusRecent,
		Count:    10,
		Language: model.LanguageEnglish,
	}

	req := prompt.Discovery(cfg, "CRISPR")

	gt.True(t, strings.Contains(req.Instruction, "Prioritize recent advances"))
	gt.False(t, strings.Contains(req.Instruction, "Prioritize foundational and seminal works"))
	gt.True(t, strings.Contains(req.Instruction, "English"))
	gt.True(t, strings.Contains(req.Instruction, "up to 10 works"))
	gt.Value(t, req.Prompt).Equal("Research topic: CRISPR")
}

func TestDiscoveryHistoryFocus(t *testing.T) {
	cfg := model.GenerationConfig{Focus: model.FocusHistory, Count: 5, Language: model.LanguageJapanese}

	req := prompt.Discovery(cfg, "plate tectonics")

	gt.True(t, strings.Contains(req.Instruction, "Prioritize foundational and seminal works"))
	gt.False(t, strings.Contains(req.Instruction, "Prioritize recent advances"))
	gt.True(t, strings.Contains(req.Instruction, "Japanese"))
}

func TestDiscoveryForbidsFabrication(t *testing.T) {
	req := prompt.Discovery(model.DefaultGenerationConfig(), "dark matter")

	gt.True(t, strings.Contains(req.Instruction, "Returning fewer is acceptable"))
	gt.True(t, strings.Contains(req.Instruction, "Never invent"))
}

func TestDiscoveryFallbacks(t *testing.T) {
	cfg := model.GenerationConfig{
		Focus:    model.Focus("upside-down"),
		Count:    42,
		Language: model.Language("tlh"),
	}

	req := prompt.Discovery(cfg, "quantum error correction")

	// unrecognized values fall back instead of failing
	gt.True(t, strings.Contains(req.Instruction, "Balance foundational works"))
	gt.True(t, strings.Contains(req.Instruction, "up to 10 works"))
	gt.True(t, strings.Contains(req.Instruction, "English"))
}

func TestReviewNumericStyleOrder(t *testing.T) {
	result := &model.DiscoveryResult{
		Topic:   "messenger RNA vaccines",
		Summary: "three decades from idea to deployment",
		Articles: []model.Article{
			{Title: "B", Authors: "Zimmer, A."},
			{Title: "A", Authors: "Young, B."},
			{Title: "C", Authors: "Xu, C."},
		},
	}

	req := prompt.Review(result, model.LanguageEnglish, model.StyleNumeric)

	gt.True(t, strings.Contains(req.Instruction, "order of first appearance"))
	gt.True(t, strings.Contains(req.Instruction, "NOT in alphabetical order"))
	gt.False(t, strings.Contains(req.Instruction, "alphabetically by first author surname"))
}

func TestReviewAlphabeticalStyles(t *testing.T) {
	result := &model.DiscoveryResult{Topic: "t", Summary: "s"}

	for _, style := range []model.CitationStyle{model.StyleAPA, model.StyleMLA, model.StyleChicago} {
		req := prompt.Review(result, model.LanguageEnglish, style)
		gt.True(t, strings.Contains(req.Instruction, "alphabetically")).Describe(string(style))
	}
}

func TestReviewForbidsFlatListing(t *testing.T) {
	result := &model.DiscoveryResult{Topic: "t", Summary: "s"}
	req := prompt.Review(result, model.LanguageFrench, model.StyleAPA)

	gt.True(t, strings.Contains(req.Instruction, "Do not produce a flat work-by-work listing"))
	gt.True(t, strings.Contains(req.Instruction, "French"))
	gt.True(t, strings.Contains(req.Prompt, "Topic: t"))
}

func TestTimelinePrompt(t *testing.T) {
	p := prompt.Timeline("milestones of CRISPR research as a winding road", model.LanguageGerman, model.Size1K)

	gt.True(t, strings.Contains(p, "milestones of CRISPR research"))
	gt.True(t, strings.Contains(p, "German"))
	gt.True(t, strings.Contains(p, "standard detail"))
}

func TestTimelineSizeHints(t *testing.T) {
	base := "a winding road"

	p2k := prompt.Timeline(base, model.LanguageEnglish, model.Size2K)
	gt.True(t, strings.Contains(p2k, "high detail"))
	gt.False(t, strings.Contains(p2k, "standard detail"))

	p4k := prompt.Timeline(base, model.LanguageEnglish, model.Size4K)
	gt.True(t, strings.Contains(p4k, "maximum detail"))

	// unrecognized tiers fall back to 1K guidance
	fallback := prompt.Timeline(base, model.LanguageEnglish, model.ImageSize("8K"))
	gt.True(t, strings.Contains(fallback, "standard detail"))
}

func TestContextEnumeratesAllArticles(t *testing.T) {
	result := &model.DiscoveryResult{
		Topic:   "superconductivity",
		Summary: "from mercury at 4K to cuprates",
		Articles: []model.Article{
			{Title: "First", Authors: "Onnes, H.", PublicationDate: "1911", Journal: "Comm. Leiden", Significance: "discovery", AISummary: "mercury loses resistance"},
			{Title: "Second", Authors: "Bardeen, J.; Cooper, L.; Schrieffer, J.", PublicationDate: "1957", Significance: "theory", AISummary: "BCS theory"},
			{Title: "Third", Authors: "Bednorz, J.; Müller, K.", PublicationDate: "1986", Significance: "high-Tc", AISummary: "cuprate superconductors"},
		},
	}

	text := prompt.Context(result)

	gt.True(t, strings.Contains(text, "Topic: superconductivity"))
	gt.True(t, strings.Contains(text, "from mercury at 4K"))
	for i, a := range result.Articles {
		gt.True(t, strings.Contains(text, fmt.Sprintf("%d. %s", i+1, a.Title))).Describe(a.Title)
	}
	// original order preserved
	gt.True(t, strings.Index(text, "1. First") < strings.Index(text, "2. Second"))
	gt.True(t, strings.Index(text, "2. Second") < strings.Index(text, "3. Third"))
	// journal only when present
	gt.True(t, strings.Contains(text, "Journal: Comm. Leiden"))
	gt.Value(t, strings.Count(text, "Journal:")).Equal(1)
}

func TestContextZeroArticles(t *testing.T) {
	result := &model.DiscoveryResult{Topic: "phlogiston", Summary: "a dead end"}

	text := prompt.Context(result)

	gt.True(t, strings.Contains(text, "Topic: phlogiston"))
	gt.True(t, strings.Contains(text, "a dead end"))
	gt.True(t, strings.HasSuffix(text, "Articles:\n"))
}

func TestGreetingReferencesTopic(t *testing.T) {
	gt.True(t, strings.Contains(prompt.Greeting("CRISPR"), `"CRISPR"`))
}
