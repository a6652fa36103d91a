// Package session holds the authenticated viewer identity for the whole
// process. It is constructed once at composition root and handed down,
// never reached through global state.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mvillar/fastfeet-front/internal/model"
	"github.com/mvillar/fastfeet-front/pgk/auth"
)

// UserAPI is the slice of the FastFeet client the holder needs.
type UserAPI interface {
	GetUser(ctx context.Context) (*model.User, error)
	Logout(ctx context.Context) error
	SessionToken() string
	ResetSession()
}

type Holder struct {
	api UserAPI
	lg  *zap.SugaredLogger

	mu       sync.Mutex
	user     *model.User
	fetching bool
	group    singleflight.Group
	now      func() time.Time
}

func New(api UserAPI, lg *zap.SugaredLogger) *Holder {
	return &Holder{
		api: api,
		lg:  lg,
		now: time.Now,
	}
}

// CurrentUser returns the cached identity, fetching it on first use.
// Concurrent callers during the first fetch share one request.
func (h *Holder) CurrentUser(ctx context.Context) (*model.User, error) {
	h.mu.Lock()
	if h.user != nil {
		user := *h.user
		h.mu.Unlock()
		return &user, nil
	}
	h.mu.Unlock()

	fetched, err, _ := h.group.Do("user", func() (any, error) {
		h.setFetching(true)
		defer h.setFetching(false)

		user, err := h.api.GetUser(ctx)
		if err != nil {
			return nil, err
		}

		h.mu.Lock()
		h.user = user
		h.mu.Unlock()

		return user, nil
	})
	if err != nil {
		if model.IsUnauthorized(err) {
			h.Clear()
		}
		return nil, err
	}

	user := *fetched.(*model.User)
	return &user, nil
}

// IsFetching reports whether the identity fetch is currently in flight,
// the loading state the view renders while the first screen mounts.
func (h *Holder) IsFetching() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fetching
}

func (h *Holder) setFetching(v bool) {
	h.mu.Lock()
	h.fetching = v
	h.mu.Unlock()
}

// Authenticated reports whether a session token exists and has not
// expired. The server remains the authority; this only spares a doomed
// round trip.
func (h *Holder) Authenticated() bool {
	token := h.api.SessionToken()
	if token == "" {
		return false
	}

	return !auth.Expired(token, h.now())
}

// Logout terminates the upstream session best-effort and always clears
// local state, so a failed upstream call still signs the process out.
func (h *Holder) Logout(ctx context.Context) {
	if err := h.api.Logout(ctx); err != nil {
		h.lg.Warnf("upstream logout failed: %v", err)
	}

	h.Clear()
}

// Clear resets the local identity and session cookie without calling the
// server. Used when the server already rejected the session.
func (h *Holder) Clear() {
	h.api.ResetSession()

	h.mu.Lock()
	h.user = nil
	h.mu.Unlock()
}
