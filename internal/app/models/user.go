package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"` // URL-addressable handle
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Profile is a user annotated with follow-graph counters for the
// profile and post detail pages. Subscribed is always false for an
// anonymous viewer.
type Profile struct {
	User
	FollowerCount  int64 `json:"followerCount"`  // users following this author
	FollowingCount int64 `json:"followingCount"` // authors this user follows
	Subscribed     bool  `json:"subscribed"`     // whether the viewer follows this author
}
