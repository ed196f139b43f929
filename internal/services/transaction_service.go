package services

import (
	"time"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/repository"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	transactions repository.TransactionRepository
	accounts     repository.AccountRepository
	categories   repository.CategoryRepository
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(
	transactions repository.TransactionRepository,
	accounts repository.AccountRepository,
	categories repository.CategoryRepository,
) TransactionServicer {
	return &transactionService{
		transactions: transactions,
		accounts:     accounts,
		categories:   categories,
	}
}

// Create records a new transaction and applies its effect to the owning
// account's balance. The transaction is written first, then the account;
// a crash between the two leaves a transaction without its balance effect.
// Concurrent calls against the same account are not serialized here; if
// the store wants stronger guarantees it has to provide them itself.
func (s *transactionService) Create(
	amount int64,
	txType models.TransactionType,
	description string,
	date time.Time,
	accountID, categoryID string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	if date.IsZero() {
		date = time.Now()
	}

	// Both lookups run regardless of each other's outcome; a missing
	// category is reported before a missing account.
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		return nil, err
	}

	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	if account == nil {
		return nil, apperrors.ErrAccountNotFound
	}

	transaction := &models.Transaction{
		AccountID:   accountID,
		CategoryID:  categoryID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if txType == models.TransactionTypeIncome {
		account.UpdateBalance(account.Balance + amount)
	} else {
		account.UpdateBalance(account.Balance - amount)
	}

	if err := s.transactions.Create(transaction); err != nil {
		return nil, err
	}
	if err := s.accounts.Update(account); err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetByID retrieves a transaction by ID.
func (s *transactionService) GetByID(id string) (*models.Transaction, error) {
	transaction, err := s.transactions.FindByID(id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperrors.ErrTransactionNotFound
	}
	return transaction, nil
}

// List returns the user's transactions matching the filter, plus the total
// count. An empty result is success.
func (s *transactionService) List(filter repository.TransactionFilter) ([]models.Transaction, int, error) {
	if filter.UserID == "" {
		return nil, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "user ID is required")
	}

	transactions, err := s.transactions.FindManyWithFilters(filter)
	if err != nil {
		return nil, 0, err
	}
	return transactions, len(transactions), nil
}
