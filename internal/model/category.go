package model

// Category groups deals for browsing. Rows are seeded externally.
type Category struct {
	ID   uint   `json:"category_id" gorm:"primaryKey"`
	Name string `json:"category_name" gorm:"uniqueIndex;size:100;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
}

// TableName pins the table to the schema name used by the site.
func (Category) TableName() string { return "category" }

// DealCategory links a deal to a category.
type DealCategory struct {
	DealID     uint `json:"deal_id" gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint `json:"category_id" gorm:"primaryKey;autoIncrement:false"`
}

// TableName pins the table to the schema name used by the site.
func (DealCategory) TableName() string { return "deal_category" }
