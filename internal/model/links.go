package model

// Join tables recording per-user state. Composite primary keys make saves
// and likes idempotent: a second insert of the same pair is a conflict the
// repositories turn into a no-op.

// UserDeal records a user bookmarking a deal.
type UserDeal struct {
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	DealID uint `json:"deal_id" gorm:"primaryKey;autoIncrement:false"`
}

// TableName pins the table to the schema name used by the site.
func (UserDeal) TableName() string { return "user_deal" }

// UserVoucher records a user bookmarking a voucher.
type UserVoucher struct {
	UserID    uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	VoucherID uint `json:"voucher_id" gorm:"primaryKey;autoIncrement:false"`
}

// TableName pins the table to the schema name used by the site.
func (UserVoucher) TableName() string { return "user_voucher" }

// DealUpVote records a user liking a deal. Only ever read as a count.
type DealUpVote struct {
	DealID uint `json:"deal_id" gorm:"primaryKey;autoIncrement:false"`
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
}

// TableName pins the table to the schema name used by the site.
func (DealUpVote) TableName() string { return "deal_up_vote" }

// VoucherUpVote records a user liking a voucher.
type VoucherUpVote struct {
	VoucherID uint `json:"voucher_id" gorm:"primaryKey;autoIncrement:false"`
	UserID    uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
}

// TableName pins the table to the schema name used by the site.
func (VoucherUpVote) TableName() string { return "voucher_up_vote" }
