package engine

import (
	"context"

	"github.com/shufflegram/backend/internal/models"
)

// ProfileSummary is the per-user view of the ledger shown on /profile.
type ProfileSummary struct {
	UserID               string `json:"user_id"`
	XP                   int    `json:"xp"`
	Level                int    `json:"level"`
	Uploads              int    `json:"uploads"`
	Saved                int    `json:"saved"`
	Referrals            int    `json:"referrals"`
	Verified             bool   `json:"verified"`
	Following            int    `json:"following"`
	Followers            int    `json:"followers"`
	PostsToday           int    `json:"posts_today"`
	AnonymousReceive     bool   `json:"anonymous_receive"`
	CommentNotifications bool   `json:"comment_notifications"`
}

// Profile builds the profile summary for a user.
func (e *Engine) Profile(ctx context.Context, userID string) (*ProfileSummary, error) {
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return nil, err
	}
	dayStart := startOfDay(e.now())
	postsToday := 0
	for _, t := range user.UploadedAt {
		if !t.Before(dayStart) {
			postsToday++
		}
	}
	return &ProfileSummary{
		UserID:               user.ID,
		XP:                   user.XP,
		Level:                Level(user.XP),
		Uploads:              len(user.Uploads),
		Saved:                len(user.Saved),
		Referrals:            user.Referrals,
		Verified:             user.Verified,
		Following:            len(user.Following),
		Followers:            len(user.Followers),
		PostsToday:           postsToday,
		AnonymousReceive:     user.AnonymousReceive,
		CommentNotifications: user.CommentNotifications,
	}, nil
}

// LeaderboardEntry is one row of the XP leaderboard. DisplayID is masked for
// non-admin viewers.
type LeaderboardEntry struct {
	UserID    string `json:"user_id,omitempty"`
	DisplayID string `json:"display_id"`
	XP        int    `json:"xp"`
	Level     int    `json:"level"`
}

// Leaderboard returns the top users by XP. When the viewer is not an admin
// the real ids are withheld and only masked ids are exposed.
func (e *Engine) Leaderboard(ctx context.Context, viewerID string, limit int64) ([]LeaderboardEntry, error) {
	admin, err := e.IsAdmin(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	users, err := e.users.TopByXP(ctx, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entry := LeaderboardEntry{
			DisplayID: "User " + u.MaskedID(),
			XP:        u.XP,
			Level:     Level(u.XP),
		}
		if admin {
			entry.UserID = u.ID
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Trending returns the most-liked posts.
func (e *Engine) Trending(ctx context.Context, limit int64) ([]models.Post, error) {
	return e.posts.TopByLikes(ctx, limit)
}

// UploaderBadge resolves the anonymous caption data for a post's uploader.
func (e *Engine) UploaderBadge(ctx context.Context, uploaderID string) (level int, verified bool) {
	user, err := e.users.GetUser(ctx, uploaderID)
	if err != nil {
		return 0, false
	}
	return Level(user.XP), user.Verified
}

// DashboardStats aggregates process-wide counters for the admin dashboard.
type DashboardStats struct {
	TotalUsers    int64           `json:"total_users"`
	TotalPosts    int64           `json:"total_posts"`
	VerifiedUsers int64           `json:"verified_users"`
	BannedUsers   int64           `json:"banned_users"`
	Settings      models.Settings `json:"settings"`
}

// Dashboard returns the admin dashboard counters. Admin only.
func (e *Engine) Dashboard(ctx context.Context, adminID string) (*DashboardStats, error) {
	if err := e.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	stats := &DashboardStats{Settings: *settings}
	if stats.TotalUsers, err = e.users.CountUsers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPosts, err = e.posts.CountPosts(ctx); err != nil {
		return nil, err
	}
	if stats.VerifiedUsers, err = e.users.CountVerified(ctx); err != nil {
		return nil, err
	}
	if stats.BannedUsers, err = e.users.CountBanned(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// CurrentSettings returns the runtime tunables. Admin only.
func (e *Engine) CurrentSettings(ctx context.Context, adminID string) (*models.Settings, error) {
	if err := e.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	return e.settings.GetSettings(ctx)
}

// UpdateSettings applies the admin's changes. Limits clamp at a floor of 1.
func (e *Engine) UpdateSettings(ctx context.Context, adminID string, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	if err := e.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if req.ReferralSystem != nil {
		settings.ReferralSystem = *req.ReferralSystem
	}
	if req.UploadLimit != nil {
		settings.UploadLimit = clampMin(*req.UploadLimit, 1)
	}
	if req.ShuffleLimit != nil {
		settings.ShuffleLimit = clampMin(*req.ShuffleLimit, 1)
	}
	if req.ReportThreshold != nil {
		settings.ReportThreshold = clampMin(*req.ReportThreshold, 1)
	}
	if req.CommentNotifications != nil {
		settings.CommentNotifications = *req.CommentNotifications
	}
	if err := e.settings.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// AdjustUploadLimit shifts the hourly upload limit by delta (floor 1).
func (e *Engine) AdjustUploadLimit(ctx context.Context, adminID string, delta int) (*models.Settings, error) {
	settings, err := e.CurrentSettings(ctx, adminID)
	if err != nil {
		return nil, err
	}
	limit := clampMin(settings.UploadLimit+delta, 1)
	return e.UpdateSettings(ctx, adminID, &models.UpdateSettingsRequest{UploadLimit: &limit})
}

// AdjustShuffleLimit shifts the lifetime shuffle limit by delta (floor 1).
func (e *Engine) AdjustShuffleLimit(ctx context.Context, adminID string, delta int) (*models.Settings, error) {
	settings, err := e.CurrentSettings(ctx, adminID)
	if err != nil {
		return nil, err
	}
	limit := clampMin(settings.ShuffleLimit+delta, 1)
	return e.UpdateSettings(ctx, adminID, &models.UpdateSettingsRequest{ShuffleLimit: &limit})
}

// ToggleReferralSystem flips the referral feature flag.
func (e *Engine) ToggleReferralSystem(ctx context.Context, adminID string) (*models.Settings, error) {
	settings, err := e.CurrentSettings(ctx, adminID)
	if err != nil {
		return nil, err
	}
	enabled := !settings.ReferralSystem
	return e.UpdateSettings(ctx, adminID, &models.UpdateSettingsRequest{ReferralSystem: &enabled})
}

// ToggleCommentAlerts flips the global admin comment broadcast flag.
func (e *Engine) ToggleCommentAlerts(ctx context.Context, adminID string) (*models.Settings, error) {
	settings, err := e.CurrentSettings(ctx, adminID)
	if err != nil {
		return nil, err
	}
	enabled := !settings.CommentNotifications
	return e.UpdateSettings(ctx, adminID, &models.UpdateSettingsRequest{CommentNotifications: &enabled})
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
