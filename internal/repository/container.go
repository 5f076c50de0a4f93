package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Session    SessionRepo
	Submission SubmissionRepo
	Buyer      BuyerRepo
	Action     ActionRepo
	Admin      AdminRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Session:    NewSessionRepo(db),
		Submission: NewSubmissionRepo(db),
		Buyer:      NewBuyerRepo(db),
		Action:     NewActionRepo(db),
		Admin:      NewAdminRepo(db),
		db:         db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Session:    r.Session.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Buyer:      r.Buyer.WithTx(tx),
		Action:     r.Action.WithTx(tx),
		Admin:      r.Admin.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside a transaction. Without a backing database (unit
// tests wire mocks directly into the struct) fn runs on the container
// as-is.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
