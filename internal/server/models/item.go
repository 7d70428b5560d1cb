package models

import "time"

// Item is a user-owned resource. Access is always filtered by OwnerID.
type Item struct {
	ID          string
	Title       string
	Description string
	OwnerID     string
	CreatedAt   time.Time
}
