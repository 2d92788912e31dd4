package models

// Group represents a community posts can be filed under. Managed
// through the admin surface only; this application reads it.
type Group struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"` // unique
	Slug        string `json:"slug" db:"slug"`   // unique, URL-safe, min length 3
	Description string `json:"description" db:"description"`
}
