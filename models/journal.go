package models

import "time"

// JournalEntry is a single mood/journal record owned by a user.
type JournalEntry struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Date      string    `bson:"date" json:"date"` // "2006-01-02"
	Mood      int       `bson:"mood" json:"mood"` // 1 (lowest) to 5 (highest)
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
