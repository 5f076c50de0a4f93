package repository

import (
	"time"

	"github.com/funnelbot/leadintake/internal/domain/session"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepo interface {
	Upsert(s *session.FormSession) error
	Get(userID int64) (*session.FormSession, error)
	Delete(userID int64) error
	ListStale(olderThan time.Time) ([]session.FormSession, error)
	MarkReminderSent(userID int64) error
	CountByStep() (map[session.Step]int64, error)
	CountCreatedSince(since time.Time) (int64, error)
	CountStaleUnreminded(olderThan time.Time) (int64, error)
	WithTx(tx *gorm.DB) SessionRepo
}

type DBSessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *DBSessionRepo {
	return &DBSessionRepo{db: db}
}

func (r *DBSessionRepo) WithTx(tx *gorm.DB) SessionRepo {
	return &DBSessionRepo{db: tx}
}

// Upsert writes the whole checkpoint, create-or-replace on user_id.
func (r *DBSessionRepo) Upsert(s *session.FormSession) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(s).Error
}

func (r *DBSessionRepo) Get(userID int64) (*session.FormSession, error) {
	var s session.FormSession
	if err := r.db.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DBSessionRepo) Delete(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&session.FormSession{}).Error
}

func (r *DBSessionRepo) ListStale(olderThan time.Time) ([]session.FormSession, error) {
	var sessions []session.FormSession
	err := r.db.
		Where("created_at < ? AND reminder_sent = ?", olderThan, false).
		Order("created_at asc").
		Find(&sessions).Error
	return sessions, err
}

func (r *DBSessionRepo) MarkReminderSent(userID int64) error {
	return r.db.Model(&session.FormSession{}).
		Where("user_id = ?", userID).
		Update("reminder_sent", true).Error
}

func (r *DBSessionRepo) CountByStep() (map[session.Step]int64, error) {
	var rows []struct {
		CurrentStep session.Step
		Count       int64
	}
	err := r.db.Model(&session.FormSession{}).
		Select("current_step, count(*) as count").
		Group("current_step").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[session.Step]int64, len(rows))
	for _, row := range rows {
		counts[row.CurrentStep] = row.Count
	}
	return counts, nil
}

func (r *DBSessionRepo) CountCreatedSince(since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&session.FormSession{}).
		Where("created_at >= ?", since).
		Count(&n).Error
	return n, err
}

func (r *DBSessionRepo) CountStaleUnreminded(olderThan time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&session.FormSession{}).
		Where("created_at < ? AND reminder_sent = ?", olderThan, false).
		Count(&n).Error
	return n, err
}
