package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"uniqueIndex;not null;size:100"`
	PinHash   string    `gorm:"not null;size:255"`
	Balance   int64     `gorm:"not null;default:0;check:chk_users_balance,balance >= 0"` // Balance in whole units
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
