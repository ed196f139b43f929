// Package repository defines the persistence contracts the services depend
// on, together with a GORM implementation for production and an in-memory
// implementation for tests. Lookups signal absence by returning a nil entity
// with a nil error; a non-nil error always means a store fault, never
// "not found".
package repository

import "moneta/internal/models"

// AccountRepository is the persistence contract for accounts.
type AccountRepository interface {
	Create(account *models.Account) error
	FindByID(id string) (*models.Account, error)
	FindAll() ([]models.Account, error)
	FetchByUserID(userID string) ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id string) error
}

// CategoryRepository is the persistence contract for categories.
type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id string) (*models.Category, error)
	FindAll() ([]models.Category, error)
	FindAllByUserID(userID string) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id string) error
}

// TransactionFilter holds optional filter parameters for querying
// transactions. UserID scopes the query through the owning account's user;
// the remaining fields are applied only when set. Month without Year is
// interpreted against the current year.
type TransactionFilter struct {
	UserID     string
	Month      *int
	Year       *int
	Type       *models.TransactionType
	CategoryID *string
	AccountID  *string
}

// TransactionRepository is the persistence contract for transactions.
type TransactionRepository interface {
	Create(transaction *models.Transaction) error
	FindByID(id string) (*models.Transaction, error)
	FindAll() ([]models.Transaction, error)
	FindByAccountID(accountID string) ([]models.Transaction, error)
	FindByCategoryID(categoryID string) ([]models.Transaction, error)
	FindManyWithFilters(filter TransactionFilter) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id string) error
}

// UserRepository is the persistence contract for users.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}
