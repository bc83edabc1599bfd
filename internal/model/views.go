package model

// Read-side row shapes produced by join queries.

// DealWithVotes is a deal annotated with its like count.
type DealWithVotes struct {
	Deal      `gorm:"embedded"`
	VoteCount int64 `json:"vote_count"`
}

// VoucherWithMerchant is a voucher annotated with its merchant's display
// image and, for like-ordered listings, its like count.
type VoucherWithMerchant struct {
	Voucher   `gorm:"embedded"`
	ImageURI  string `json:"image_uri"`
	VoteCount int64  `json:"vote_count"`
}

// CategoryDeal is a deal annotated with the category it was matched through.
type CategoryDeal struct {
	Deal         `gorm:"embedded"`
	CategoryName string `json:"category_name"`
}
