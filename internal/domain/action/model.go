package action

import "time"

// UserAction is one tracked interaction, grouped by a per-user session
// id so the funnel can be replayed step by step.
type UserAction struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         int64     `gorm:"index;not null;column:user_id" json:"user_id"`
	ActionType     string    `gorm:"size:50;not null" json:"action_type"`
	ActionValue    *string   `gorm:"size:255" json:"action_value"`
	StepName       *string   `gorm:"size:50" json:"step_name"`
	SessionID      string    `gorm:"size:36;index;not null" json:"session_id"`
	TimeSinceStart int       `gorm:"not null;default:0" json:"time_since_start"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserAction) TableName() string {
	return "user_actions"
}
