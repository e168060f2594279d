package models

import "time"

// Notification is an append-only delivery log row (PostgreSQL). Every
// outbound fan-out, relay or moderation notice is recorded here together
// with its delivery outcome; delivery itself is best-effort and failures are
// never surfaced to the triggering user.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"` // upload, follow, comment, comment_reply, anon_message, anon_stop, moderation, admin
	ActorID     string    `json:"actor_id" gorm:"size:32;index"`
	RecipientID string    `json:"recipient_id" gorm:"size:32;index"`
	TargetID    string    `json:"target_id" gorm:"size:64"` // post id, user id, etc.
	Message     string    `json:"message"`
	Delivered   bool      `json:"delivered" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
