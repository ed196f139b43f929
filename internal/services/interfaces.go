package services

import (
	"time"

	"moneta/internal/models"
	"moneta/internal/repository"
)

// Defaults holds fallback presentation values applied when a create request
// omits color or icon. They come from configuration, not from literals baked
// into the entity layer.
type Defaults struct {
	Color string
	Icon  string
}

// AccountUpdateFields holds optional account fields for updates; nil means
// "leave unchanged".
type AccountUpdateFields struct {
	Name  *string
	Color *string
	Icon  *string
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	Create(userID, name string, balance int64, color, icon string) (*models.Account, error)
	GetByID(id string) (*models.Account, error)
	Update(id string, fields AccountUpdateFields) (*models.Account, error)
	Delete(id string) error
	List(userID string) ([]models.Account, error)
}

// CategoryUpdateFields holds optional category fields for updates; nil means
// "leave unchanged".
type CategoryUpdateFields struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	Create(userID, name, description, color, icon string) (*models.Category, error)
	GetByID(id string) (*models.Category, error)
	Update(id string, fields CategoryUpdateFields) (*models.Category, error)
	Delete(id string) error
	List(userID string) ([]models.Category, error)
}

// TransactionServicer defines the contract for transaction-related business
// logic. Creating a transaction is the only operation that moves an account
// balance.
type TransactionServicer interface {
	Create(amount int64, txType models.TransactionType, description string, date time.Time, accountID, categoryID string) (*models.Transaction, error)
	GetByID(id string) (*models.Transaction, error)
	List(filter repository.TransactionFilter) ([]models.Transaction, int, error)
}

// DashboardInfo is the consolidated per-user view assembled from accounts,
// categories, and transactions.
type DashboardInfo struct {
	Accounts               []models.Account                     `json:"accounts"`
	TransactionsByAccount  []models.TransactionWithAccountName  `json:"transactions_by_account"`
	TransactionsByCategory []models.TransactionWithCategoryName `json:"transactions_by_category"`
	TotalBalance           int64                                `json:"total_balance"`
	TotalIncome            int64                                `json:"total_income"`
	TotalExpense           int64                                `json:"total_expense"`
}

// DashboardServicer defines the contract for the dashboard aggregation.
type DashboardServicer interface {
	GetDashboardInfo(userID string) (*DashboardInfo, error)
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(email, password, name string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
