package domain

import "time"

// User represents a bot user. Records in users.json are keyed by the
// stringified Telegram id, so the id itself is not part of the value.
type User struct {
	ID         int64     `json:"-"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	JoinedDate time.Time `json:"joined_date"`
	OrderIDs   []string  `json:"orders"`
}

// UserSummary is the projection of a user returned by store listings.
type UserSummary struct {
	UserID     int64
	Username   string
	FirstName  string
	JoinedDate time.Time
	OrderCount int
}
