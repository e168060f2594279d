package models

import (
	"fmt"
	"time"
)

// Post represents an uploaded image stored in MongoDB. The document id is
// derived from the uploader id plus a nanosecond timestamp, which makes it
// unique by construction even for back-to-back uploads.
type Post struct {
	ID         string    `json:"id" bson:"_id"`
	FileID     string    `json:"file_id" bson:"file_id"` // transport file reference
	Uploader   string    `json:"uploader" bson:"uploader"`
	Likes      int       `json:"likes" bson:"likes"`
	Dislikes   int       `json:"dislikes" bson:"dislikes"`
	Comments   []Comment `json:"comments" bson:"comments"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	SavedBy    []string  `json:"saved_by" bson:"saved_by"`
	ReportedBy []string  `json:"reported_by" bson:"reported_by"`
}

// Comment is a top-level comment embedded in a post document.
type Comment struct {
	Author    string    `json:"author" bson:"author"`
	Text      string    `json:"text" bson:"text"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Replies   []Reply   `json:"replies" bson:"replies"`
}

// Reply is a reply to a comment.
type Reply struct {
	Author    string    `json:"author" bson:"author"`
	Text      string    `json:"text" bson:"text"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// NewPost builds a post owned by uploader with a collision-free id.
func NewPost(uploader, fileID string, now time.Time) *Post {
	return &Post{
		ID:         PostID(uploader, now),
		FileID:     fileID,
		Uploader:   uploader,
		Comments:   []Comment{},
		Timestamp:  now,
		SavedBy:    []string{},
		ReportedBy: []string{},
	}
}

// PostID derives a post id from the uploader and creation time.
func PostID(uploader string, t time.Time) string {
	return fmt.Sprintf("%s_%d", uploader, t.UnixNano())
}

// HasReporter reports whether the given user already reported the post.
func (p *Post) HasReporter(userID string) bool {
	for _, r := range p.ReportedBy {
		if r == userID {
			return true
		}
	}
	return false
}
