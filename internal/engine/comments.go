package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/shufflegram/backend/internal/models"
)

// AddComment appends a comment to the post, awards comment XP and notifies
// the uploader (honoring their alert toggle) plus, when globally enabled,
// the root admin. Returns the new total comment count.
func (e *Engine) AddComment(ctx context.Context, authorID, postID, text string) (int, error) {
	post, err := e.posts.GetPost(ctx, postID)
	if err != nil {
		return 0, translateNotFound(err)
	}
	post.Comments = append(post.Comments, models.Comment{
		Author:    authorID,
		Text:      text,
		Timestamp: e.now(),
		Replies:   []models.Reply{},
	})
	if err := e.posts.SavePost(ctx, post); err != nil {
		return 0, err
	}
	if err := e.Award(ctx, authorID, XPComment); err != nil {
		return 0, err
	}

	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	if post.Uploader != authorID {
		if uploader, err := e.users.GetUser(ctx, post.Uploader); err == nil && uploader.CommentNotifications {
			e.fanout.Send("comment", authorID, postID, Delivery{
				Recipient: post.Uploader,
				Text:      fmt.Sprintf("New comment from User %s:\n\n%s", models.MaskID(authorID), text),
				Post:      post,
			})
		}
	}
	if settings.CommentNotifications && e.rootAdmin != "" && e.rootAdmin != authorID {
		e.fanout.Send("comment", authorID, postID, Delivery{
			Recipient: e.rootAdmin,
			Text:      fmt.Sprintf("New comment on post %s:\n%s\n\nFrom: User %s", postID, text, models.MaskID(authorID)),
		})
	}
	return len(post.Comments), nil
}

// ReplyToComment appends a reply to the comment at the given index and
// notifies the original commenter. A stale index yields ErrInvalidState.
func (e *Engine) ReplyToComment(ctx context.Context, authorID, postID string, index int, text string) error {
	post, err := e.posts.GetPost(ctx, postID)
	if err != nil {
		return translateNotFound(err)
	}
	if index < 0 || index >= len(post.Comments) {
		return fmt.Errorf("comment %d on post %s: %w", index, postID, ErrInvalidState)
	}

	post.Comments[index].Replies = append(post.Comments[index].Replies, models.Reply{
		Author:    authorID,
		Text:      text,
		Timestamp: e.now(),
	})
	if err := e.posts.SavePost(ctx, post); err != nil {
		return err
	}

	commenter := post.Comments[index].Author
	if commenter != authorID {
		if target, err := e.users.GetUser(ctx, commenter); err == nil && target.CommentNotifications {
			e.fanout.Send("comment_reply", authorID, postID, Delivery{
				Recipient: commenter,
				Text:      fmt.Sprintf("Reply to your comment from User %s:\n\n%s", models.MaskID(authorID), text),
				Post:      post,
			})
		}
	}
	return nil
}

// Comments returns up to limit of the newest comments on the post.
func (e *Engine) Comments(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
	post, err := e.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	comments := post.Comments
	if limit > 0 && len(comments) > limit {
		comments = comments[len(comments)-limit:]
	}
	return comments, nil
}

// PostComments pairs a post with a subset of its comments.
type PostComments struct {
	Post     models.Post
	Comments []models.Comment
}

// CommentsToday collects the caller's posts that received comments since
// local midnight, with just those comments attached.
func (e *Engine) CommentsToday(ctx context.Context, userID string) ([]PostComments, error) {
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return nil, err
	}
	dayStart := startOfDay(e.now())

	var result []PostComments
	for _, pid := range user.Uploads {
		post, err := e.posts.GetPost(ctx, pid)
		if err != nil {
			if translateNotFound(err) == ErrNotFound {
				continue
			}
			return nil, err
		}
		var today []models.Comment
		for _, c := range post.Comments {
			if !c.Timestamp.Before(dayStart) {
				today = append(today, c)
			}
		}
		if len(today) > 0 {
			result = append(result, PostComments{Post: *post, Comments: today})
		}
	}
	return result, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
