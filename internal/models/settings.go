package models

// Settings holds the runtime tunables adjustable by admins, persisted as a
// single MongoDB document with a fixed id.
type Settings struct {
	ID                   string   `json:"-" bson:"_id"`
	ReferralSystem       bool     `json:"referral_system" bson:"referral_system"`
	UploadLimit          int      `json:"upload_limit" bson:"upload_limit"`
	ShuffleLimit         int      `json:"shuffle_limit" bson:"shuffle_limit"`
	ReportThreshold      int      `json:"report_threshold" bson:"report_threshold"`
	CommentNotifications bool     `json:"comment_notifications" bson:"comment_notifications"`
	Admins               []string `json:"admins" bson:"admins"`
}

// SettingsID is the fixed document id of the settings singleton.
const SettingsID = "global"

// DefaultSettings returns the tunables a fresh deployment starts with.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                   SettingsID,
		ReferralSystem:       false,
		UploadLimit:          15,
		ShuffleLimit:         20,
		ReportThreshold:      10,
		CommentNotifications: true,
		Admins:               []string{},
	}
}

// IsDelegatedAdmin reports whether the given user id was promoted by the
// root admin.
func (s *Settings) IsDelegatedAdmin(userID string) bool {
	for _, id := range s.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

// UpdateSettingsRequest defines the request body for adjusting tunables over
// the admin API. Pointer fields distinguish "absent" from zero values.
type UpdateSettingsRequest struct {
	ReferralSystem       *bool `json:"referral_system,omitempty"`
	UploadLimit          *int  `json:"upload_limit,omitempty" validate:"omitempty,min=1"`
	ShuffleLimit         *int  `json:"shuffle_limit,omitempty" validate:"omitempty,min=1"`
	ReportThreshold      *int  `json:"report_threshold,omitempty" validate:"omitempty,min=1"`
	CommentNotifications *bool `json:"comment_notifications,omitempty"`
}
