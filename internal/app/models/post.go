package models

import "time"

// Post defines the post model based on the 'posts' table. PubDate is
// set once on insert; feeds order by it descending.
type Post struct {
	ID       int64     `json:"id" db:"id"`
	Text     string    `json:"text" db:"text"`
	PubDate  time.Time `json:"pubDate" db:"pub_date"`
	AuthorID int64     `json:"authorId" db:"author_id"`
	GroupID  *int64    `json:"groupId,omitempty" db:"group_id"` // nullable, cleared when the group is deleted
	Image    *string   `json:"image,omitempty" db:"image"`      // URL path of the stored upload, nullable

	// Related entities, eagerly loaded by the feed queries
	Author *User  `json:"author,omitempty"`
	Group  *Group `json:"group,omitempty"`

	// CommentCount is annotated onto feed rows in the same query.
	CommentCount int64 `json:"commentCount"`
}
