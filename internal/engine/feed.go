package engine

import (
	"context"
	"errors"

	"github.com/shufflegram/backend/internal/models"
	"github.com/shufflegram/backend/internal/repositories"
)

// shuffleMemoryCap bounds the per-user dedup memory. Once full, the oldest
// entry is evicted and that post becomes eligible again unless it is also
// liked, disliked or owned. Bounded memory over permanent exclusion is a
// deliberate trade-off; adjust here if it ever needs to change.
const shuffleMemoryCap = 1000

// NextPost selects one uniform-random post the user has not seen, liked,
// disliked or uploaded, and records it in the dedup memory. Returns
// ErrFeedExhausted when no candidate remains; that state is stable until new
// posts arrive or memory evicts, so callers must not retry.
func (e *Engine) NextPost(ctx context.Context, userID string) (*models.Post, error) {
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return nil, err
	}
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if err := e.checkShuffleQuota(user, settings, e.exempt(user, settings)); err != nil {
		return nil, err
	}

	exclude := make([]string, 0, len(user.Shuffled)+len(user.Liked)+len(user.Disliked)+len(user.Uploads))
	exclude = append(exclude, user.Shuffled...)
	exclude = append(exclude, user.Liked...)
	exclude = append(exclude, user.Disliked...)
	exclude = append(exclude, user.Uploads...)

	post, err := e.posts.SampleExcluding(ctx, exclude, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFeedExhausted
		}
		return nil, err
	}

	rememberShuffled(user, post.ID)
	user.ShuffledCount++
	if err := e.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return post, nil
}

// rememberShuffled appends the post to the dedup memory. The append is
// idempotent and the memory is a FIFO capped at shuffleMemoryCap.
func rememberShuffled(user *models.User, postID string) {
	for _, id := range user.Shuffled {
		if id == postID {
			return
		}
	}
	user.Shuffled = append(user.Shuffled, postID)
	if len(user.Shuffled) > shuffleMemoryCap {
		user.Shuffled = user.Shuffled[len(user.Shuffled)-shuffleMemoryCap:]
	}
}
