package engine

import (
	"context"
	"errors"

	"github.com/shufflegram/backend/internal/repositories"
)

// XP award policy. Fixed, not configurable.
const (
	XPUpload            = 5 // uploading a photo
	XPLikeGiven         = 1 // liking a post
	XPReactionReceived  = 2 // receiving a like or dislike on an own post
	XPComment           = 1 // commenting on a post
	xpPerLevel          = 50
	referralUnlockCount = 3
)

// Level derives a user's level from xp. Levels are never stored, always
// derived, so they cannot drift.
func Level(xp int) int { return xp / xpPerLevel }

// Award adds a positive amount of XP to the user. A missing user is treated
// as already-resolved and ignored.
func (e *Engine) Award(ctx context.Context, userID string, amount int) error {
	if amount <= 0 {
		return nil
	}
	err := e.users.AddXP(ctx, userID, amount)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	return err
}
