package models

import "time"

// User is the per-user ledger record stored in MongoDB. The document id is
// the transport-assigned chat id as a string.
type User struct {
	ID                   string      `json:"id" bson:"_id"`
	XP                   int         `json:"xp" bson:"xp"`
	Uploads              []string    `json:"uploads" bson:"uploads"`
	Liked                []string    `json:"liked" bson:"liked"`
	Disliked             []string    `json:"disliked" bson:"disliked"`
	Saved                []string    `json:"saved" bson:"saved"`
	Shuffled             []string    `json:"shuffled" bson:"shuffled"`
	ShuffledCount        int         `json:"shuffled_count" bson:"shuffled_count"`
	UploadedAt           []time.Time `json:"uploaded_at" bson:"uploaded_at"`
	Verified             bool        `json:"verified" bson:"verified"`
	Banned               bool        `json:"banned" bson:"banned"`
	Referrals            int         `json:"referrals" bson:"referrals"`
	RefBy                string      `json:"ref_by,omitempty" bson:"ref_by,omitempty"`
	Following            []string    `json:"following" bson:"following"`
	Followers            []string    `json:"followers" bson:"followers"`
	MutedNotifications   []string    `json:"muted_notifications" bson:"muted_notifications"`
	AnonymousReceive     bool        `json:"anonymous_receive" bson:"anonymous_receive"`
	AnonConversation     string      `json:"anon_conversation,omitempty" bson:"anon_conversation,omitempty"`
	CommentNotifications bool        `json:"comment_notifications" bson:"comment_notifications"`
	CreatedAt            time.Time   `json:"created_at" bson:"created_at"`
}

// NewUser returns a fresh ledger record with the defaults every user starts
// with. Creation is a lazy, idempotent upsert on first interaction.
func NewUser(id string, now time.Time) *User {
	return &User{
		ID:                   id,
		Uploads:              []string{},
		Liked:                []string{},
		Disliked:             []string{},
		Saved:                []string{},
		Shuffled:             []string{},
		UploadedAt:           []time.Time{},
		Following:            []string{},
		Followers:            []string{},
		MutedNotifications:   []string{},
		AnonymousReceive:     true,
		CommentNotifications: true,
		CreatedAt:            now,
	}
}

// HasLiked reports whether the user already liked the given post.
func (u *User) HasLiked(postID string) bool { return contains(u.Liked, postID) }

// HasDisliked reports whether the user already disliked the given post.
func (u *User) HasDisliked(postID string) bool { return contains(u.Disliked, postID) }

// HasSaved reports whether the user already saved the given post.
func (u *User) HasSaved(postID string) bool { return contains(u.Saved, postID) }

// HasMuted reports whether upload notifications from the given user are muted.
func (u *User) HasMuted(userID string) bool { return contains(u.MutedNotifications, userID) }

// IsFollowing reports whether the user follows the given user.
func (u *User) IsFollowing(userID string) bool { return contains(u.Following, userID) }

// MaskedID is the anonymized identity shown to other users: the last four
// characters of the transport id.
func (u *User) MaskedID() string { return MaskID(u.ID) }

// MaskID anonymizes a transport id for display.
func MaskID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
