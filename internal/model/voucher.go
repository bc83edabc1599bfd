package model

import "time"

// Voucher is a discount-code listing tied to a merchant, with an expiry date.
type Voucher struct {
	ID          uint      `json:"voucher_id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Code        string    `json:"code" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	ExpDate     time.Time `json:"exp_date" gorm:"index"`
	ShopLink    string    `json:"shop_link" gorm:"size:2048"`
	MerchantID  uint      `json:"merchant_id" gorm:"index;not null"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
}

// TableName pins the table to the schema name used by the site.
func (Voucher) TableName() string { return "voucher" }
