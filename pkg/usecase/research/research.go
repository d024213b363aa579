// Package research sequences the generation stages of one research session:
// discovery, timeline image, and literature review. Stages after discovery
// are independent, optional, and re-triggerable; each updates exactly one
// field of the owning session.
package research

import (
	"github.com/m-mizutani/retrospect/pkg/adapter"
	"github.com/m-mizutani/retrospect/pkg/repository"
)

// UseCase provides the stage pipeline against one history store
type UseCase struct {
	history *repository.History
	gemini  adapter.Gemini
}

// New creates a new research UseCase instance
func New(history *repository.History, gemini adapter.Gemini) *UseCase {
	return &UseCase{
		history: history,
		gemini:  gemini,
	}
}

// History exposes the underlying store for list/show/delete surfaces
func (u *UseCase) History() *repository.History {
	return u.history
}
