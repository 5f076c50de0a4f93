package repository

import (
	"github.com/funnelbot/leadintake/internal/domain/action"
	"gorm.io/gorm"
)

type ActionQueryParams struct {
	UserID     *int64
	ActionType *string
	SessionID  *string
	Limit      int
	Offset     int
}

type ActionRepo interface {
	Create(a *action.UserAction) error
	List(params ActionQueryParams) ([]action.UserAction, error)
	WithTx(tx *gorm.DB) ActionRepo
}

type DBActionRepo struct {
	db *gorm.DB
}

func NewActionRepo(db *gorm.DB) *DBActionRepo {
	return &DBActionRepo{db: db}
}

func (r *DBActionRepo) WithTx(tx *gorm.DB) ActionRepo {
	return &DBActionRepo{db: tx}
}

func (r *DBActionRepo) Create(a *action.UserAction) error {
	return r.db.Create(a).Error
}

func (r *DBActionRepo) List(params ActionQueryParams) ([]action.UserAction, error) {
	query := r.db.Model(&action.UserAction{})
	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.ActionType != nil {
		query = query.Where("action_type = ?", *params.ActionType)
	}
	if params.SessionID != nil {
		query = query.Where("session_id = ?", *params.SessionID)
	}
	limit := params.Limit
	if limit == 0 {
		limit = 100
	}

	var actions []action.UserAction
	err := query.Order("created_at desc").Limit(limit).Offset(params.Offset).Find(&actions).Error
	return actions, err
}
