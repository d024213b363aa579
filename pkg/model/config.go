package model

import "github.com/m-mizutani/goerr/v2"

// Focus controls the historical/recent balance of discovered articles
type Focus string

const (
	FocusHistory  Focus = "emphasize-history"
	FocusBalanced Focus = "balanced"
	FocusRecent   Focus = "emphasize-recent"
)

// Validate checks if the focus is valid
func (f Focus) Validate() error {
	switch f {
	case FocusHistory, FocusBalanced, FocusRecent:
		return nil
	default:
		return goerr.New("invalid focus", goerr.V("focus", f))
	}
}

// OrDefault returns the focus itself, or FocusBalanced for an unrecognized value
func (f Focus) OrDefault() Focus {
	if f.Validate() != nil {
		return FocusBalanced
	}
	return f
}

// Language is the target natural language for generated prose fields
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
	LanguageChinese  Language = "zh"
	LanguageSpanish  Language = "es"
	LanguageFrench   Language = "fr"
	LanguageGerman   Language = "de"
)

// Validate checks if the language is valid
func (l Language) Validate() error {
	switch l {
	case LanguageEnglish, LanguageJapanese, LanguageChinese, LanguageSpanish, LanguageFrench, LanguageGerman:
		return nil
	default:
		return goerr.New("invalid language", goerr.V("language", l))
	}
}

// OrDefault returns the language itself, or English for an unrecognized value
func (l Language) OrDefault() Language {
	if l.Validate() != nil {
		return LanguageEnglish
	}
	return l
}

// CitationStyle is the formatting convention for the literature review stage.
// It is independent of the session language and can differ per regeneration.
type CitationStyle string

const (
	StyleAPA     CitationStyle = "apa"
	StyleMLA     CitationStyle = "mla"
	StyleChicago CitationStyle = "chicago"
	// StyleNumeric cites with bracketed numbers and orders the bibliography
	// by first appearance in the prose, not alphabetically.
	StyleNumeric CitationStyle = "numeric"
)

// Validate checks if the citation style is valid
func (c CitationStyle) Validate() error {
	switch c {
	case StyleAPA, StyleMLA, StyleChicago, StyleNumeric:
		return nil
	default:
		return goerr.New("invalid citation style", goerr.V("style", c))
	}
}

// OrDefault returns the style itself, or APA for an unrecognized value
func (c CitationStyle) OrDefault() CitationStyle {
	if c.Validate() != nil {
		return StyleAPA
	}
	return c
}

// ImageSize is the resolution tier for timeline image generation
type ImageSize string

const (
	Size1K ImageSize = "1K"
	Size2K ImageSize = "2K"
	Size4K ImageSize = "4K"
)

// OrDefault returns the size itself, or 1K for an unrecognized value
func (s ImageSize) OrDefault() ImageSize {
	switch s {
	case Size1K, Size2K, Size4K:
		return s
	default:
		return Size1K
	}
}

// allowed target article counts
var allowedCounts = []int{5, 10, 15, 20}

const DefaultCount = 10

// NormalizeCount maps an arbitrary count to one of the allowed targets,
// falling back to the default rather than failing.
func NormalizeCount(n int) int {
	for _, c := range allowedCounts {
		if n == c {
			return n
		}
	}
	return DefaultCount
}

// GenerationConfig is the immutable per-session configuration used to
// compile every stage's request. Stored with the session for reproducibility.
type GenerationConfig struct {
	Focus         Focus         `json:"focus"`
	Count         int           `json:"count"`
	Language      Language      `json:"language"`
	CitationStyle CitationStyle `json:"citationStyle"`
}

// DefaultGenerationConfig returns the configuration used when the user picks nothing
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Focus:         FocusBalanced,
		Count:         DefaultCount,
		Language:      LanguageEnglish,
		CitationStyle: StyleAPA,
	}
}

// Normalize returns a copy with every unrecognized value replaced by its default
func (c GenerationConfig) Normalize() GenerationConfig {
	return GenerationConfig{
		Focus:         c.Focus.OrDefault(),
		Count:         NormalizeCount(c.Count),
		Language:      c.Language.OrDefault(),
		CitationStyle: c.CitationStyle.OrDefault(),
	}
}
