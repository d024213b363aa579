// Package repository maintains the bounded, ordered, persisted collection
// of research sessions. The in-memory slice is the source of truth for the
// running process; persistence through the injected Storage adapter is
// best-effort and never propagates a write failure to the caller.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/retrospect/pkg/adapter"
	"github.com/m-mizutani/retrospect/pkg/model"
	"github.com/m-mizutani/retrospect/pkg/utils/logging"
)

// historyKey is the single stable storage key for the whole collection
const historyKey = "history"

// DefaultCapacity bounds the number of retained sessions
const DefaultCapacity = 15

// History is the ordered session store, newest first. Mutation methods
// return the resulting collection instead of exposing shared mutable state.
// Single-writer, single-process: concurrent writers would race on the
// persisted blob with last write wins.
type History struct {
	storage  adapter.Storage
	capacity int
	sessions []*model.Session
}

type Option func(*History)

// WithCapacity overrides the retention bound
func WithCapacity(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.capacity = n
		}
	}
}

// New constructs the store and loads the persisted collection. A key that
// was never written yields an empty store; a blob that cannot be decoded is
// an error, not silent data loss.
func New(ctx context.Context, storage adapter.Storage, opts ...Option) (*History, error) {
	h := &History{
		storage:  storage,
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(h)
	}

	data, err := storage.Get(ctx, historyKey)
	if err != nil {
		if errors.Is(err, adapter.ErrKeyNotFound) {
			return h, nil
		}
		return nil, goerr.Wrap(err, "failed to load history")
	}

	if err := json.Unmarshal(data, &h.sessions); err != nil {
		return nil, goerr.Wrap(err, "failed to decode history blob")
	}
	if len(h.sessions) > h.capacity {
		h.sessions = h.sessions[:h.capacity]
	}

	return h, nil
}

// List returns the sessions newest first
func (h *History) List() []*model.Session {
	return slices.Clone(h.sessions)
}

// Get returns the session with the given id
func (h *History) Get(id model.SessionID) (*model.Session, error) {
	for _, s := range h.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, goerr.Wrap(model.ErrSessionNotFound, "no such session", goerr.V("session_id", id))
}

// Insert prepends a session and truncates to capacity, silently evicting
// the oldest entries. Returns the new collection.
func (h *History) Insert(ctx context.Context, session *model.Session) []*model.Session {
	sessions := make([]*model.Session, 0, len(h.sessions)+1)
	sessions = append(sessions, session)
	sessions = append(sessions, h.sessions...)
	if len(sessions) > h.capacity {
		sessions = sessions[:h.capacity]
	}

	h.sessions = sessions
	h.persist(ctx)
	return h.List()
}

// AttachTimelineImage replaces the timeline image of the session in place.
// The discovery result and every other session are untouched.
func (h *History) AttachTimelineImage(ctx context.Context, id model.SessionID, img *model.ImageRef) ([]*model.Session, error) {
	session, err := h.Get(id)
	if err != nil {
		return nil, err
	}

	session.TimelineImage = img
	h.persist(ctx)
	return h.List(), nil
}

// AttachReview replaces the literature review of the session in place
func (h *History) AttachReview(ctx context.Context, id model.SessionID, review string) ([]*model.Session, error) {
	session, err := h.Get(id)
	if err != nil {
		return nil, err
	}

	session.LiteratureReview = review
	h.persist(ctx)
	return h.List(), nil
}

// Delete removes exactly one session, preserving the relative order of the
// remainder.
func (h *History) Delete(ctx context.Context, id model.SessionID) ([]*model.Session, error) {
	if _, err := h.Get(id); err != nil {
		return nil, err
	}

	h.sessions = slices.DeleteFunc(slices.Clone(h.sessions), func(s *model.Session) bool {
		return s.ID == id
	})
	h.persist(ctx)
	return h.List(), nil
}

// Clear removes every session
func (h *History) Clear(ctx context.Context) []*model.Session {
	h.sessions = nil
	h.persist(ctx)
	return h.List()
}

// persist re-serializes the whole collection under the stable key. A write
// failure (e.g. storage quota) is logged and swallowed: the in-memory state
// stays authoritative for the process lifetime.
func (h *History) persist(ctx context.Context) {
	data, err := json.Marshal(h.sessions)
	if err != nil {
		logging.From(ctx).Warn("failed to serialize history", "error", err)
		return
	}

	if err := h.storage.Set(ctx, historyKey, data); err != nil {
		logging.From(ctx).Warn("failed to persist history, in-memory state retained", "error", err)
	}
}
