package engine

import (
	"time"

	"github.com/shufflegram/backend/internal/models"
)

// uploadWindow is the sliding window for the upload quota.
const uploadWindow = time.Hour

// reserveUpload enforces the sliding-window upload quota and, on success,
// stamps the new upload into the window. Pruning of aged-out timestamps
// happens on the same pass, so the window list stays bounded. The caller
// persists the user record.
func (e *Engine) reserveUpload(user *models.User, limit int, exempt bool) error {
	now := e.now()
	recent := user.UploadedAt[:0:0]
	for _, t := range user.UploadedAt {
		if now.Sub(t) < uploadWindow {
			recent = append(recent, t)
		}
	}
	if len(recent) >= limit && !exempt {
		return &RateLimitError{Limit: limit, Window: uploadWindow}
	}
	user.UploadedAt = append(recent, now)
	return nil
}

// checkShuffleQuota enforces the lifetime shuffle gate. It only bites while
// the referral system is enabled; three recorded referrals lift it
// permanently (re-checked every time, never cached).
func (e *Engine) checkShuffleQuota(user *models.User, settings *models.Settings, exempt bool) error {
	if !settings.ReferralSystem {
		return nil
	}
	if user.ShuffledCount < settings.ShuffleLimit {
		return nil
	}
	if user.Referrals >= referralUnlockCount || exempt {
		return nil
	}
	return &ShuffleLimitError{Limit: settings.ShuffleLimit, ReferralsRequired: referralUnlockCount}
}
