package models

import "time"

// TransactionWithAccountName is a read-only projection of a transaction
// joined with its account's display name. It carries no identity of its own:
// two values are equal iff all fields are equal. Views are rebuilt on every
// dashboard request and never persisted.
type TransactionWithAccountName struct {
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	CategoryID  string          `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewTransactionWithAccountName builds the account-joined view for a
// transaction.
func NewTransactionWithAccountName(t Transaction, accountName string) TransactionWithAccountName {
	return TransactionWithAccountName{
		Amount:      t.Amount,
		Type:        t.Type,
		Description: t.Description,
		Date:        t.Date,
		AccountID:   t.AccountID,
		AccountName: accountName,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TransactionWithCategoryName is the category-joined counterpart of
// TransactionWithAccountName.
type TransactionWithCategoryName struct {
	Amount       int64           `json:"amount"`
	Type         TransactionType `json:"type"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	AccountID    string          `json:"account_id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewTransactionWithCategoryName builds the category-joined view for a
// transaction.
func NewTransactionWithCategoryName(t Transaction, categoryName string) TransactionWithCategoryName {
	return TransactionWithCategoryName{
		Amount:       t.Amount,
		Type:         t.Type,
		Description:  t.Description,
		Date:         t.Date,
		AccountID:    t.AccountID,
		CategoryID:   t.CategoryID,
		CategoryName: categoryName,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
