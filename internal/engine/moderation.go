package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/shufflegram/backend/internal/models"
	"github.com/shufflegram/backend/internal/repositories"
)

// Report files a report against a post. A duplicate report by the same user
// is a no-op. An admin report removes the post unconditionally; otherwise
// removal happens when the distinct-reporter count reaches the configured
// threshold. Returns whether the post was removed.
func (e *Engine) Report(ctx context.Context, reporterID, postID string) (bool, error) {
	post, err := e.posts.GetPost(ctx, postID)
	if err != nil {
		return false, translateNotFound(err)
	}
	if post.HasReporter(reporterID) {
		return false, nil
	}
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return false, err
	}

	post.ReportedBy = append(post.ReportedBy, reporterID)

	if e.isAdmin(reporterID, settings) || len(post.ReportedBy) >= settings.ReportThreshold {
		if err := e.removePost(ctx, post); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := e.posts.SavePost(ctx, post); err != nil {
		return false, err
	}
	return false, nil
}

// removePost deletes the post and drops its id from the uploader's uploads
// list, keeping referential integrity. Other users' liked/disliked/saved
// references are left dangling on purpose; readers tolerate them.
func (e *Engine) removePost(ctx context.Context, post *models.Post) error {
	if err := e.posts.DeletePost(ctx, post.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	uploader, err := e.users.GetUser(ctx, post.Uploader)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	uploads := uploader.Uploads[:0:0]
	for _, pid := range uploader.Uploads {
		if pid != post.ID {
			uploads = append(uploads, pid)
		}
	}
	uploader.Uploads = uploads
	return e.users.SaveUser(ctx, uploader)
}

// BanUser flags the user as banned and deletes every post they own in the
// same pass. Admin only.
func (e *Engine) BanUser(ctx context.Context, adminID, targetID string) error {
	if err := e.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	user, err := e.users.EnsureUser(ctx, targetID, e.now())
	if err != nil {
		return err
	}
	if _, err := e.posts.DeleteByUploader(ctx, targetID); err != nil {
		return err
	}
	user.Banned = true
	user.Uploads = []string{}
	return e.users.SaveUser(ctx, user)
}

// UnbanUser clears the ban flag. Deleted posts are not restored.
func (e *Engine) UnbanUser(ctx context.Context, adminID, targetID string) error {
	if err := e.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	user, err := e.users.EnsureUser(ctx, targetID, e.now())
	if err != nil {
		return err
	}
	user.Banned = false
	return e.users.SaveUser(ctx, user)
}

// VerifyUser marks the user verified, lifting all quotas. Admin only.
func (e *Engine) VerifyUser(ctx context.Context, adminID, targetID string) error {
	if err := e.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	user, err := e.users.EnsureUser(ctx, targetID, e.now())
	if err != nil {
		return err
	}
	user.Verified = true
	if err := e.users.SaveUser(ctx, user); err != nil {
		return err
	}
	e.fanout.Send("admin", adminID, targetID, Delivery{
		Recipient: targetID,
		Text:      "You are now verified: uploads and shuffles are unlimited.",
	})
	return nil
}

// PromoteAdmin adds the target to the delegated admin set. Only the root
// admin may promote.
func (e *Engine) PromoteAdmin(ctx context.Context, actorID, targetID string) error {
	if actorID != e.rootAdmin {
		return fmt.Errorf("promote admin: %w", ErrForbidden)
	}
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return err
	}
	if settings.IsDelegatedAdmin(targetID) {
		return nil
	}
	settings.Admins = append(settings.Admins, targetID)
	if err := e.settings.SaveSettings(ctx, settings); err != nil {
		return err
	}
	e.fanout.Send("admin", actorID, targetID, Delivery{
		Recipient: targetID,
		Text:      "You have been promoted to admin.",
	})
	return nil
}

// ReportQueue lists reported posts ordered by report count. Admin only.
func (e *Engine) ReportQueue(ctx context.Context, adminID string, limit int64) ([]models.Post, error) {
	if err := e.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	return e.posts.MostReported(ctx, limit)
}

func (e *Engine) requireAdmin(ctx context.Context, userID string) error {
	admin, err := e.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !admin {
		return fmt.Errorf("user %s: %w", userID, ErrForbidden)
	}
	return nil
}
