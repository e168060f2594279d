package engine

import (
	"errors"
	"fmt"
	"time"
)

// Error taxonomy. Validation errors are terminal for the triggering
// operation and reported to the acting user; delivery failures are swallowed
// inside the fan-out and never surface here.
var (
	// ErrNotFound means the referenced post or user is gone; treated as
	// already-resolved, never retried.
	ErrNotFound = errors.New("no longer available")

	// ErrForbidden means a non-admin invoked an admin operation.
	ErrForbidden = errors.New("forbidden")

	// ErrBanned blocks uploads from banned users.
	ErrBanned = errors.New("banned from uploading")

	// ErrInvalidState covers actions against state that moved on, e.g.
	// replying to a comment index that no longer exists.
	ErrInvalidState = errors.New("no longer valid")

	// ErrFeedExhausted means the shuffle candidate set is empty. Stable
	// until new posts appear or dedup memory evicts; callers must not retry.
	ErrFeedExhausted = errors.New("no unseen posts available")

	// ErrNoPartner means nobody is eligible for anonymous pairing.
	ErrNoPartner = errors.New("no partner available")

	// ErrNoConversation means the user has no active anonymous conversation.
	ErrNoConversation = errors.New("not in an anonymous conversation")
)

// RateLimitError denies an upload over the sliding-window quota.
type RateLimitError struct {
	Limit  int
	Window time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("only %d uploads allowed per %s", e.Limit, e.Window)
}

// ShuffleLimitError denies a shuffle once the lifetime quota is spent and
// too few referrals are recorded. The caller should surface a referral
// deep-link so the user can self-unblock.
type ShuffleLimitError struct {
	Limit             int
	ReferralsRequired int
}

func (e *ShuffleLimitError) Error() string {
	return fmt.Sprintf("shuffle limit of %d reached; refer %d friends to unlock", e.Limit, e.ReferralsRequired)
}
