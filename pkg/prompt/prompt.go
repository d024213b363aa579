// Package prompt compiles user configuration into instruction and prompt
// text for each generation stage. Compilation is pure: every enumerated
// value is handled exhaustively and unrecognized values fall back to a
// default instead of failing.
package prompt

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/m-mizutani/retrospect/pkg/model"
)

//go:embed templates/discovery.md
var discoveryPromptRaw string

//go:embed templates/review.md
var reviewPromptRaw string

var (
	discoveryPromptTmpl = template.Must(template.New("discovery").Parse(discoveryPromptRaw))
	reviewPromptTmpl    = template.Must(template.New("review").Parse(reviewPromptRaw))
)

// Request is a compiled (instruction, prompt) pair for one stage
type Request struct {
	Instruction string
	Prompt      string
}

// focusBlocks are mutually exclusive; exactly one is injected per discovery
// request.
var focusBlocks = map[model.Focus]string{
	model.FocusHistory:  "Prioritize foundational and seminal works. Favor the earliest influential publications that established the field, even when more recent studies exist.",
	model.FocusBalanced: "Balance foundational works with recent developments. Cover the arc from the earliest influential publications to the current state of the field.",
	model.FocusRecent:   "Prioritize recent advances. Favor publications from the last few years that represent the current state of the art, citing earlier work only when essential to the story.",
}

// citationBlocks fix both the in-text convention and the bibliography
// ordering rule per style. The numeric block spells the appearance-order
// rule out emphatically because models tend to alphabetize regardless.
var citationBlocks = map[model.CitationStyle]string{
	model.StyleAPA:     "Use APA style: in-text citations as (Author, Year). Order the bibliography alphabetically by first author surname.",
	model.StyleMLA:     "Use MLA style: in-text citations as (Author Page). Order the Works Cited list alphabetically by first author surname.",
	model.StyleChicago: "Use Chicago author-date style: in-text citations as (Author Year). Order the bibliography alphabetically by first author surname.",
	model.StyleNumeric: "Use numeric citations: bracketed numbers such as [1], assigned in order of first appearance in the text. IMPORTANT: the bibliography MUST be listed in order of first appearance in the prose, NOT in alphabetical order. [1] is the first source cited in the text, [2] is the second, and so on.",
}

var languageNames = map[model.Language]string{
	model.LanguageEnglish:  "English",
	model.LanguageJapanese: "Japanese",
	model.LanguageChinese:  "Chinese",
	model.LanguageSpanish:  "Spanish",
	model.LanguageFrench:   "French",
	model.LanguageGerman:   "German",
}

// LanguageName maps an enumerated language code to the natural-language
// name injected into instruction text. Unrecognized codes fall back to
// English.
func LanguageName(lang model.Language) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return languageNames[model.LanguageEnglish]
}

// Discovery compiles the discovery-stage request. Each model call is
// self-contained: the target language is restated here even though it was
// already part of the session configuration.
func Discovery(cfg model.GenerationConfig, topic string) Request {
	cfg = cfg.Normalize()

	var buf bytes.Buffer
	// template data is fully normalized, execution cannot fail
	_ = discoveryPromptTmpl.Execute(&buf, map[string]any{
		"FocusBlock": focusBlocks[cfg.Focus],
		"Count":      cfg.Count,
		"Language":   LanguageName(cfg.Language),
	})

	return Request{
		Instruction: buf.String(),
		Prompt:      "Research topic: " + topic,
	}
}

// Review compiles the literature-review request for the full discovery
// result. The citation style is a fresh parameter each call and may differ
// from the style chosen at discovery time.
func Review(result *model.DiscoveryResult, lang model.Language, style model.CitationStyle) Request {
	var buf bytes.Buffer
	_ = reviewPromptTmpl.Execute(&buf, map[string]any{
		"CitationBlock": citationBlocks[style.OrDefault()],
		"Language":      LanguageName(lang),
	})

	return Request{
		Instruction: buf.String(),
		Prompt:      Context(result) + "\nWrite the literature review now.",
	}
}

// sizeHints express the resolution tier as rendering guidance. The
// image-capable generateContent call takes no size parameter, so the
// tier steers detail through the prompt.
var sizeHints = map[model.ImageSize]string{
	model.Size1K: "Render at standard detail for on-screen viewing.",
	model.Size2K: "Render at high detail with crisp, clearly legible labels.",
	model.Size4K: "Render at maximum detail suitable for large prints, with fine typographic labels.",
}

// Timeline compiles the image-stage prompt from the discovery result's
// suggested visual prompt.
func Timeline(visualPrompt string, lang model.Language, size model.ImageSize) string {
	return visualPrompt +
		"\n\nRender a single illustrated horizontal timeline. Keep text labels short and write them in " +
		LanguageName(lang) + ". " + sizeHints[size.OrDefault()]
}

// ChatSystem compiles the system instruction for the conversational stage:
// a role preamble plus the full research context.
func ChatSystem(result *model.DiscoveryResult, lang model.Language) string {
	return "You are a research assistant answering follow-up questions about a completed literature discovery session. " +
		"Ground your answers in the research context below. Answer in " + LanguageName(lang) + ".\n\n" +
		Context(result)
}

// Greeting is the synthetic first message of a conversation
func Greeting(topic string) string {
	return fmt.Sprintf("I've gathered the research history for %q. Ask me anything about the works, the timeline, or how the field developed.", topic)
}
