package main

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dealshare/internal/config"
	"dealshare/internal/db"
	"dealshare/internal/model"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Merchant{},
		&model.Category{},
		&model.Deal{},
		&model.Voucher{},
		&model.DealCategory{},
		&model.UserDeal{},
		&model.UserVoucher{},
		&model.DealUpVote{},
		&model.VoucherUpVote{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seed(gormDB); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	log.Println("Seed completed successfully!")
}

// seed loads the merchant and category reference rows plus a demo user with
// a few listings. Reruns are harmless: existing rows are left alone.
func seed(gormDB *gorm.DB) error {
	merchants := []model.Merchant{
		{ID: 1, Name: "Amazon", ImageURI: "/img/merchants/amazon.png", WebsiteURL: "https://www.amazon.co.uk"},
		{ID: 2, Name: "Argos", ImageURI: "/img/merchants/argos.png", WebsiteURL: "https://www.argos.co.uk"},
		{ID: 3, Name: "Currys", ImageURI: "/img/merchants/currys.png", WebsiteURL: "https://www.currys.co.uk"},
		{ID: 4, Name: "Tesco", ImageURI: "/img/merchants/tesco.png", WebsiteURL: "https://www.tesco.com"},
		{ID: 5, Name: "John Lewis", ImageURI: "/img/merchants/john-lewis.png", WebsiteURL: "https://www.johnlewis.com"},
	}
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&merchants).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d merchants", len(merchants))

	categories := []model.Category{
		{ID: 1, Name: "Electronics", Slug: "electronics"},
		{ID: 2, Name: "Groceries", Slug: "groceries"},
		{ID: 3, Name: "Fashion", Slug: "fashion"},
		{ID: 4, Name: "Home & Garden", Slug: "home-garden"},
		{ID: 5, Name: "Gaming", Slug: "gaming"},
	}
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d categories", len(categories))

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demo := model.User{
		ID:           1,
		FirstName:    "Demo",
		SecondName:   "User",
		Username:     "demo",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		SignUpDate:   time.Now().UTC(),
	}
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&demo).Error; err != nil {
		return err
	}
	log.Println("Seeded demo user")

	deals := []model.Deal{
		{
			ID:            1,
			Title:         "4K Smart TV 55\"",
			Description:   "55 inch 4K smart TV, lowest price this year.",
			DealLink:      "https://www.currys.co.uk/tv-55-4k",
			ImageLink:     "/img/deals/tv.png",
			Price:         decimal.NewFromInt(329),
			OriginalPrice: decimal.NewFromInt(449),
			UserID:        1,
			MerchantID:    3,
			PostDate:      time.Now().UTC().Add(-48 * time.Hour),
		},
		{
			ID:            2,
			Title:         "Wireless Headphones",
			Description:   "Noise cancelling over-ear headphones.",
			DealLink:      "https://www.amazon.co.uk/headphones",
			ImageLink:     "/img/deals/headphones.png",
			Price:         decimal.NewFromInt(89),
			OriginalPrice: decimal.NewFromInt(149),
			UserID:        1,
			MerchantID:    1,
			PostDate:      time.Now().UTC().Add(-24 * time.Hour),
		},
	}
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&deals).Error; err != nil {
		return err
	}
	dealCategories := []model.DealCategory{
		{DealID: 1, CategoryID: 1},
		{DealID: 2, CategoryID: 1},
	}
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&dealCategories).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d deals", len(deals))

	vouchers := []model.Voucher{
		{
			ID:          1,
			Title:       "10% off first order",
			Code:        "WELCOME10",
			Description: "10% off your first grocery order over £40.",
			ExpDate:     time.Now().UTC().Add(30 * 24 * time.Hour),
			ShopLink:    "https://www.tesco.com",
			MerchantID:  4,
			UserID:      1,
		},
		{
			ID:          2,
			Title:       "Free delivery weekend",
			Code:        "FREEDEL",
			Description: "Free standard delivery on all orders.",
			ExpDate:     time.Now().UTC().Add(7 * 24 * time.Hour),
			ShopLink:    "https://www.argos.co.uk",
			MerchantID:  2,
			UserID:      1,
		},
	}
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&vouchers).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d vouchers", len(vouchers))

	return nil
}
