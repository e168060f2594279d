// Package engine implements the content distribution and trust core:
// reputation, rate limiting, feed selection, moderation, the social graph
// and anonymous pairing. Engines mutate the ledger through the repository
// interfaces and emit outbound notifications through a Deliverer; they never
// talk to the transport directly.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/shufflegram/backend/internal/models"
	"github.com/shufflegram/backend/internal/repositories"
)

// Engine applies every inbound event against the ledger. Events are expected
// to be dispatched one at a time (the bot dispatcher is single-threaded), so
// each read-validate-mutate-persist sequence runs to completion before the
// next begins. Outbound delivery is asynchronous and never blocks or rolls
// back a mutation.
type Engine struct {
	users     repositories.UserRepository
	posts     repositories.PostRepository
	settings  repositories.SettingsRepository
	fanout    *FanOut
	rootAdmin string

	// now is swappable in tests to verify rate-limit window edges.
	now func() time.Time
}

// New creates an Engine. rootAdmin is the immutable root admin id supplied
// at startup.
func New(
	users repositories.UserRepository,
	posts repositories.PostRepository,
	settings repositories.SettingsRepository,
	fanout *FanOut,
	rootAdmin string,
) *Engine {
	return &Engine{
		users:     users,
		posts:     posts,
		settings:  settings,
		fanout:    fanout,
		rootAdmin: rootAdmin,
		now:       time.Now,
	}
}

// EnsureUser lazily creates the ledger record for a user id.
func (e *Engine) EnsureUser(ctx context.Context, userID string) (*models.User, error) {
	return e.users.EnsureUser(ctx, userID, e.now())
}

// RegisterReferral records that newUserID was invited by refID. The link is
// set at most once, never to self, and only while the referral system is
// enabled; violations are silent no-ops.
func (e *Engine) RegisterReferral(ctx context.Context, newUserID, refID string) error {
	if refID == "" || refID == newUserID {
		return nil
	}
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return err
	}
	if !settings.ReferralSystem {
		return nil
	}

	user, err := e.users.EnsureUser(ctx, newUserID, e.now())
	if err != nil {
		return err
	}
	if user.RefBy != "" {
		return nil
	}
	referrer, err := e.users.GetUser(ctx, refID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}

	user.RefBy = refID
	if err := e.users.SaveUser(ctx, user); err != nil {
		return err
	}
	referrer.Referrals++
	return e.users.SaveUser(ctx, referrer)
}

// IsAdmin reports whether the user is the root admin or a delegated admin.
func (e *Engine) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == e.rootAdmin {
		return true, nil
	}
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return false, err
	}
	return settings.IsDelegatedAdmin(userID), nil
}

// RootAdmin returns the immutable root admin id.
func (e *Engine) RootAdmin() string { return e.rootAdmin }

func (e *Engine) isAdmin(userID string, settings *models.Settings) bool {
	return userID == e.rootAdmin || settings.IsDelegatedAdmin(userID)
}

// exempt reports whether quotas are lifted for this user.
func (e *Engine) exempt(user *models.User, settings *models.Settings) bool {
	return user.Verified || e.isAdmin(user.ID, settings)
}

func translateNotFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
