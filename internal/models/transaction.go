package models

import "time"

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry. Amount is always a
// positive magnitude in minor currency units; direction is carried solely by
// Type. Date is the economic date of the transaction, distinct from the
// record timestamps in Base.
type Transaction struct {
	Base
	AccountID   string          `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID  string          `gorm:"type:uuid;not null;index" json:"category_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`
}

// SetAmount sets the transaction amount.
func (t *Transaction) SetAmount(amount int64) {
	t.Amount = amount
	t.UpdatedAt = time.Now()
}

// SetType sets the transaction type.
func (t *Transaction) SetType(txType TransactionType) {
	t.Type = txType
	t.UpdatedAt = time.Now()
}
