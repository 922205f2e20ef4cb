package domain

import "time"

// User is a collector account. Authentication lives outside the engine;
// services trust the user ID they are handed and only use this record
// for existence checks and display names.
type User struct {
	ID        string    `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
