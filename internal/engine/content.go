package engine

import (
	"context"
	"fmt"

	"github.com/shufflegram/backend/internal/models"
)

// Upload creates a post for the uploader after the ban and quota checks
// pass, awards upload XP and fans out a notification to unmuted followers.
func (e *Engine) Upload(ctx context.Context, uploaderID, fileID string) (*models.Post, error) {
	user, err := e.users.EnsureUser(ctx, uploaderID, e.now())
	if err != nil {
		return nil, err
	}
	if user.Banned {
		return nil, ErrBanned
	}
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if err := e.reserveUpload(user, settings.UploadLimit, e.exempt(user, settings)); err != nil {
		return nil, err
	}

	post := models.NewPost(uploaderID, fileID, e.now())
	if err := e.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	user.Uploads = append(user.Uploads, post.ID)
	user.XP += XPUpload
	if err := e.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	e.notifyFollowers(ctx, user, post)
	return post, nil
}

// React records a like or dislike. A user reacts to a given post at most
// once and never both ways; repeated reactions are no-ops. Returns the post
// with updated counters and whether the reaction was applied.
func (e *Engine) React(ctx context.Context, userID, postID string, like bool) (*models.Post, bool, error) {
	post, err := e.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, false, translateNotFound(err)
	}
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return nil, false, err
	}
	if user.HasLiked(postID) || user.HasDisliked(postID) {
		return post, false, nil
	}

	if like {
		post.Likes++
		user.Liked = append(user.Liked, postID)
		user.XP += XPLikeGiven
	} else {
		post.Dislikes++
		user.Disliked = append(user.Disliked, postID)
	}
	if err := e.posts.SavePost(ctx, post); err != nil {
		return nil, false, err
	}
	if err := e.users.SaveUser(ctx, user); err != nil {
		return nil, false, err
	}
	// Uploader earns XP for any reaction received.
	if err := e.Award(ctx, post.Uploader, XPReactionReceived); err != nil {
		return nil, false, err
	}
	return post, true, nil
}

// SavePost bookmarks the post for the user; idempotent.
func (e *Engine) SavePost(ctx context.Context, userID, postID string) (bool, error) {
	post, err := e.posts.GetPost(ctx, postID)
	if err != nil {
		return false, translateNotFound(err)
	}
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return false, err
	}
	if user.HasSaved(postID) {
		return false, nil
	}
	user.Saved = append(user.Saved, postID)
	if err := e.users.SaveUser(ctx, user); err != nil {
		return false, err
	}
	post.SavedBy = append(post.SavedBy, userID)
	if err := e.posts.SavePost(ctx, post); err != nil {
		return false, err
	}
	return true, nil
}

// SavedPosts returns the user's saved posts that still exist. Saved ids
// pointing at removed posts are tolerated and skipped.
func (e *Engine) SavedPosts(ctx context.Context, userID string) ([]models.Post, error) {
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(user.Saved))
	for _, pid := range user.Saved {
		post, err := e.posts.GetPost(ctx, pid)
		if err != nil {
			if translateNotFound(err) == ErrNotFound {
				continue
			}
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

// DeleteOwnPost removes one of the caller's own posts.
func (e *Engine) DeleteOwnPost(ctx context.Context, ownerID, postID string) error {
	post, err := e.posts.GetPost(ctx, postID)
	if err != nil {
		return translateNotFound(err)
	}
	if post.Uploader != ownerID {
		return fmt.Errorf("post %s: %w", postID, ErrForbidden)
	}
	return e.removePost(ctx, post)
}
