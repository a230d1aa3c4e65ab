package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID     uint64    `gorm:"primaryKey;autoIncrement"`
	UserID uint64    `gorm:"not null;index"`
	TxType string    `gorm:"column:tx_type;not null;size:10"`
	Amount int64     `gorm:"not null;check:chk_transactions_amount,amount > 0"`
	TxDate time.Time `gorm:"column:tx_date;not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
