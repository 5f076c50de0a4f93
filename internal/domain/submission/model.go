package submission

import (
	"time"

	"github.com/funnelbot/leadintake/internal/domain/attribution"
)

// CompletedSubmission is the finished lead. Exactly one may exist per
// user; creating it and deleting the form session happen in one
// transaction.
type CompletedSubmission struct {
	ID          uint                    `gorm:"primaryKey" json:"id"`
	UserID      int64                   `gorm:"uniqueIndex;not null;column:user_id" json:"user_id"`
	Username    *string                 `gorm:"size:100" json:"username"`
	Name        string                  `gorm:"size:100;not null" json:"name"`
	Country     string                  `gorm:"size:100;not null" json:"country"`
	Phone       string                  `gorm:"size:20;not null" json:"phone"`
	ContactTime string                  `gorm:"size:50;not null" json:"contact_time"`
	Attribution attribution.Attribution `gorm:"embedded;embeddedPrefix:attribution_" json:"attribution"`
	CompletedAt time.Time               `gorm:"autoCreateTime" json:"completed_at"`
	Processed   bool                    `gorm:"not null;default:false" json:"processed"`
}

func (CompletedSubmission) TableName() string {
	return "submissions"
}
