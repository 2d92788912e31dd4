package models

import "time"

// Comment defines the comment model based on the 'comments' table.
// Deleted together with its post. Listings order by Created
// descending.
type Comment struct {
	ID       int64     `json:"id" db:"id"`
	Text     string    `json:"text" db:"text"`
	Created  time.Time `json:"created" db:"created"`
	PostID   int64     `json:"postId" db:"post_id"`
	AuthorID int64     `json:"authorId" db:"author_id"`

	// Author is eagerly loaded for comment listings
	Author *User `json:"author,omitempty"`
}
