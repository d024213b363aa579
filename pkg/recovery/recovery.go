// Package recovery extracts a structured JSON payload from loosely-formatted
// model output. Models wrap JSON in prose, markdown fences, or commentary;
// this package is the single point of defense against that.
package recovery

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/model"
)

// Extract returns the JSON candidate substring of raw model text, bounded by
// the first '{' and the last '}'. When either brace is absent or the first
// occurs after the last, the whole trimmed text is returned as the candidate
// so that the subsequent parse fails predictably. No other repair is applied.
func Extract(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", goerr.Wrap(model.ErrEmptyResponse, "no text to recover from")
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end < 0 || start > end {
		return trimmed, nil
	}

	return trimmed[start : end+1], nil
}

// Unmarshal recovers the JSON payload embedded in text and parses it into v.
// A parse failure is reported as ErrMalformedOutput so the caller can retry
// or report clearly instead of displaying a corrupted partial result.
func Unmarshal(text string, v any) error {
	candidate, err := Extract(text)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return goerr.Wrap(model.ErrMalformedOutput, "failed to parse recovered payload",
			goerr.V("parse_error", err.Error()),
			goerr.V("candidate_len", len(candidate)),
		)
	}

	return nil
}
