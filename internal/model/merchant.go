package model

// Merchant is a retailer that deals and vouchers reference. Rows are seeded
// externally; the application only reads them.
type Merchant struct {
	ID         uint   `json:"merchant_id" gorm:"primaryKey"`
	Name       string `json:"merchant_name" gorm:"uniqueIndex;size:255;not null"`
	ImageURI   string `json:"image_uri" gorm:"size:2048"`
	WebsiteURL string `json:"website_url" gorm:"size:2048"`
}

// TableName pins the table to the schema name used by the site.
func (Merchant) TableName() string { return "merchant" }
