package models

import (
	"time"
)

// Streak is the single per-user streak row. It is created with zero counters
// when the account is registered and only ever mutated by the completion
// flow; LastCompletedDate is "" until the first completion.
// Invariant: LongestStreak >= CurrentStreak after every update.
//
// Keyed directly by user_id (no surrogate id) so an upsert-by-primary-key is
// the whole write path.
type Streak struct {
	UserID            string    `json:"-" gorm:"column:user_id;primaryKey"`
	CurrentStreak     int       `json:"currentStreak" gorm:"column:current_streak;not null;default:0"`
	LongestStreak     int       `json:"longestStreak" gorm:"column:longest_streak;not null;default:0"`
	LastCompletedDate string    `json:"lastCompletedDate,omitempty" gorm:"column:last_completed_date"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Streak Model
func (Streak) TableName() string {
	return "streaks"
}
