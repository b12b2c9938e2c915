package models

import (
	"gorm.io/gorm"
)

// Completion is one completed daily challenge. At most one row may exist per
// (user, calendar day); the composite unique index enforces it at the store
// level so concurrent completion attempts cannot both land.
//
// TaskTitle and TaskCategory are snapshots of the assignment at completion
// time, not re-derived on read, so later catalog additions never rewrite a
// user's history.
type Completion struct {
	UserID        string `json:"-" gorm:"column:user_id;not null;uniqueIndex:idx_user_completed_date"`
	TaskTitle     string `json:"task" gorm:"column:task_title;not null"`
	TaskCategory  string `json:"category" gorm:"column:task_category;not null"`
	CompletedDate string `json:"completedDate" gorm:"column:completed_date;not null;uniqueIndex:idx_user_completed_date"`
	Notes         string `json:"notes,omitempty" gorm:"column:notes"`
	gorm.Model
}

// TableName specifies the table name for Completion Model
func (Completion) TableName() string {
	return "completions"
}
