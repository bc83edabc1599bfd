package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is a discounted-offer listing authored by a user, tied to a merchant.
type Deal struct {
	ID            uint            `json:"deal_id" gorm:"primaryKey"`
	Title         string          `json:"title" gorm:"size:255;not null"`
	Description   string          `json:"description" gorm:"type:text"`
	DealLink      string          `json:"deal_link" gorm:"size:2048"`
	ImageLink     string          `json:"image_link" gorm:"size:2048"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	OriginalPrice decimal.Decimal `json:"original_price" gorm:"type:decimal(10,2)"`
	UserID        uint            `json:"user_id" gorm:"index;not null"`
	MerchantID    uint            `json:"merchant_id" gorm:"index;not null"`
	PostDate      time.Time       `json:"post_date" gorm:"index"`
}

// TableName pins the table to the schema name used by the site.
func (Deal) TableName() string { return "deal" }
