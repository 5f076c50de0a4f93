package buyer

import "time"

// Buyer is a paid-traffic partner. Leads arriving through a buyer deep
// link carry the buyer's campaign code as attribution.
type Buyer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"size:100;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Buyer) TableName() string {
	return "buyers"
}
