package model

import "time"

// User represents a registered account on the site.
type User struct {
	ID           uint      `json:"user_id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:100;not null"`
	SecondName   string    `json:"second_name" gorm:"size:100;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	SignUpDate   time.Time `json:"sign_up_date"`
}

// TableName pins the table to the schema name used by the site.
func (User) TableName() string { return "user" }
