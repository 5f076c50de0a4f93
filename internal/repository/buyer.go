package repository

import (
	"github.com/funnelbot/leadintake/internal/domain/buyer"
	"gorm.io/gorm"
)

type BuyerRepo interface {
	Create(b *buyer.Buyer) error
	GetByCode(code string) (*buyer.Buyer, error)
	List() ([]buyer.Buyer, error)
	SetActive(code string, active bool) error
	WithTx(tx *gorm.DB) BuyerRepo
}

type DBBuyerRepo struct {
	db *gorm.DB
}

func NewBuyerRepo(db *gorm.DB) *DBBuyerRepo {
	return &DBBuyerRepo{db: db}
}

func (r *DBBuyerRepo) WithTx(tx *gorm.DB) BuyerRepo {
	return &DBBuyerRepo{db: tx}
}

func (r *DBBuyerRepo) Create(b *buyer.Buyer) error {
	return r.db.Create(b).Error
}

func (r *DBBuyerRepo) GetByCode(code string) (*buyer.Buyer, error) {
	var b buyer.Buyer
	if err := r.db.Where("code = ?", code).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *DBBuyerRepo) List() ([]buyer.Buyer, error) {
	var buyers []buyer.Buyer
	err := r.db.Order("created_at desc").Find(&buyers).Error
	return buyers, err
}

func (r *DBBuyerRepo) SetActive(code string, active bool) error {
	return r.db.Model(&buyer.Buyer{}).
		Where("code = ?", code).
		Update("active", active).Error
}
