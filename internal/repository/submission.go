package repository

import (
	"strconv"
	"time"

	"github.com/funnelbot/leadintake/internal/domain/attribution"
	"github.com/funnelbot/leadintake/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionQueryParams struct {
	AttributionType  *string
	AttributionValue *string
	Processed        *bool
	Limit            int
}

type SubmissionRepo interface {
	Insert(sub *submission.CompletedSubmission) error
	GetByUserID(userID int64) (*submission.CompletedSubmission, error)
	Exists(userID int64) (bool, error)
	List(params SubmissionQueryParams) ([]submission.CompletedSubmission, error)
	Count() (int64, error)
	CountSince(since time.Time) (int64, error)
	CountByAttributionType() (map[attribution.Type]int64, error)
	CountByBuyerCode() (map[string]int64, error)
	CountReferredBy(userID int64) (int64, error)
	MarkProcessed(userID int64) error
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	return &DBSubmissionRepo{db: tx}
}

// Insert fails on the unique user_id index if the user already submitted.
func (r *DBSubmissionRepo) Insert(sub *submission.CompletedSubmission) error {
	return r.db.Create(sub).Error
}

func (r *DBSubmissionRepo) GetByUserID(userID int64) (*submission.CompletedSubmission, error) {
	var sub submission.CompletedSubmission
	if err := r.db.Where("user_id = ?", userID).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *DBSubmissionRepo) Exists(userID int64) (bool, error) {
	var n int64
	err := r.db.Model(&submission.CompletedSubmission{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n > 0, err
}

func (r *DBSubmissionRepo) List(params SubmissionQueryParams) ([]submission.CompletedSubmission, error) {
	query := r.db.Model(&submission.CompletedSubmission{})
	if params.AttributionType != nil {
		query = query.Where("attribution_type = ?", *params.AttributionType)
	}
	if params.AttributionValue != nil {
		query = query.Where("attribution_value = ?", *params.AttributionValue)
	}
	if params.Processed != nil {
		query = query.Where("processed = ?", *params.Processed)
	}
	limit := params.Limit
	if limit == 0 {
		limit = 100
	}

	var subs []submission.CompletedSubmission
	err := query.Order("completed_at desc").Limit(limit).Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&submission.CompletedSubmission{}).Count(&n).Error
	return n, err
}

func (r *DBSubmissionRepo) CountSince(since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&submission.CompletedSubmission{}).
		Where("completed_at >= ?", since).
		Count(&n).Error
	return n, err
}

func (r *DBSubmissionRepo) CountByAttributionType() (map[attribution.Type]int64, error) {
	var rows []struct {
		AttributionType attribution.Type
		Count           int64
	}
	err := r.db.Model(&submission.CompletedSubmission{}).
		Select("attribution_type, count(*) as count").
		Group("attribution_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[attribution.Type]int64, len(rows))
	for _, row := range rows {
		counts[row.AttributionType] = row.Count
	}
	return counts, nil
}

func (r *DBSubmissionRepo) CountByBuyerCode() (map[string]int64, error) {
	var rows []struct {
		AttributionValue string
		Count            int64
	}
	err := r.db.Model(&submission.CompletedSubmission{}).
		Where("attribution_type = ?", attribution.TypeBuyer).
		Select("attribution_value, count(*) as count").
		Group("attribution_value").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.AttributionValue] = row.Count
	}
	return counts, nil
}

func (r *DBSubmissionRepo) CountReferredBy(userID int64) (int64, error) {
	var n int64
	err := r.db.Model(&submission.CompletedSubmission{}).
		Where("attribution_type = ? AND attribution_value = ?",
			attribution.TypeReferral, strconv.FormatInt(userID, 10)).
		Count(&n).Error
	return n, err
}

func (r *DBSubmissionRepo) MarkProcessed(userID int64) error {
	return r.db.Model(&submission.CompletedSubmission{}).
		Where("user_id = ?", userID).
		Update("processed", true).Error
}
