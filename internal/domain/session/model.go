package session

import (
	"time"

	"github.com/funnelbot/leadintake/internal/domain/attribution"
	"gorm.io/datatypes"
)

// FormSession is the durable checkpoint of one in-progress intake flow.
// At most one row exists per user; writes are keyed upserts on user_id.
// Fields only ever holds keys for steps strictly before CurrentStep.
type FormSession struct {
	UserID       int64                   `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"user_id"`
	Username     *string                 `gorm:"size:100" json:"username"`
	CurrentStep  Step                    `gorm:"size:20;not null" json:"current_step"`
	Fields       datatypes.JSONMap       `gorm:"column:collected_fields" json:"collected_fields"`
	Attribution  attribution.Attribution `gorm:"embedded;embeddedPrefix:attribution_" json:"attribution"`
	CreatedAt    time.Time               `gorm:"autoCreateTime" json:"created_at"`
	ReminderSent bool                    `gorm:"not null;default:false" json:"reminder_sent"`
}

func (FormSession) TableName() string {
	return "form_sessions"
}

// New returns a fresh session positioned at the first step.
func New(userID int64, username *string, attr attribution.Attribution) *FormSession {
	return &FormSession{
		UserID:      userID,
		Username:    username,
		CurrentStep: StepName,
		Fields:      datatypes.JSONMap{},
		Attribution: attr,
		CreatedAt:   time.Now().UTC(),
	}
}

// SetField records a validated value without touching other keys.
func (s *FormSession) SetField(key, value string) {
	if s.Fields == nil {
		s.Fields = datatypes.JSONMap{}
	}
	s.Fields[key] = value
}

// Field returns the collected value for key, or "" when absent.
func (s *FormSession) Field(key string) string {
	if s.Fields == nil {
		return ""
	}
	if v, ok := s.Fields[key].(string); ok {
		return v
	}
	return ""
}

// FieldMap copies collected fields into a plain string map.
func (s *FormSession) FieldMap() map[string]string {
	out := make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		if str, ok := v.(string); ok {
			out[k] = str
		}
	}
	return out
}
