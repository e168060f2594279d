package engine

import (
	"context"
	"fmt"

	"github.com/shufflegram/backend/internal/models"
)

// Follow makes follower follow target. Idempotent: if the edge already
// exists nothing changes and already=true is returned. Both sides of the
// edge are written in one event, so they never diverge.
func (e *Engine) Follow(ctx context.Context, followerID, targetID string) (already bool, err error) {
	if followerID == targetID {
		return false, fmt.Errorf("cannot follow yourself: %w", ErrInvalidState)
	}
	follower, err := e.users.EnsureUser(ctx, followerID, e.now())
	if err != nil {
		return false, err
	}
	if follower.IsFollowing(targetID) {
		return true, nil
	}
	target, err := e.users.EnsureUser(ctx, targetID, e.now())
	if err != nil {
		return false, err
	}

	follower.Following = append(follower.Following, targetID)
	target.Followers = append(target.Followers, followerID)
	if err := e.users.SaveUser(ctx, follower); err != nil {
		return false, err
	}
	if err := e.users.SaveUser(ctx, target); err != nil {
		return false, err
	}

	e.fanout.Send("follow", followerID, targetID, Delivery{
		Recipient: targetID,
		Text:      fmt.Sprintf("User %s started following you!", models.MaskID(followerID)),
	})
	return false, nil
}

// Mute suppresses upload notifications from target for this user;
// idempotent.
func (e *Engine) Mute(ctx context.Context, userID, targetID string) (already bool, err error) {
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return false, err
	}
	if user.HasMuted(targetID) {
		return true, nil
	}
	user.MutedNotifications = append(user.MutedNotifications, targetID)
	if err := e.users.SaveUser(ctx, user); err != nil {
		return false, err
	}
	return false, nil
}

// notifyFollowers fans the new post out to every follower who has not muted
// the uploader. Best-effort: each delivery is isolated on the pool and a
// failure never aborts the upload or the rest of the batch.
func (e *Engine) notifyFollowers(ctx context.Context, uploader *models.User, post *models.Post) {
	caption := fmt.Sprintf("User %s posted a new image!\nAnonymous (Lv%d)%s",
		uploader.MaskedID(), Level(uploader.XP), verifiedBadge(uploader.Verified))

	for _, followerID := range uploader.Followers {
		follower, err := e.users.GetUser(ctx, followerID)
		if err != nil || follower.HasMuted(uploader.ID) {
			continue
		}
		e.fanout.Send("upload", uploader.ID, post.ID, Delivery{
			Recipient: followerID,
			Text:      caption,
			Post:      post,
			Control:   ControlPostActions,
			Target:    post.ID,
		})
	}
}

func verifiedBadge(verified bool) string {
	if verified {
		return " [verified]"
	}
	return ""
}
