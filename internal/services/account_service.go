package services

import (
	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/repository"
)

// accountService handles account-related business logic.
type accountService struct {
	accounts repository.AccountRepository
	defaults Defaults
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(accounts repository.AccountRepository, defaults Defaults) AccountServicer {
	return &accountService{accounts: accounts, defaults: defaults}
}

// Create creates a new account for a user. The opening balance may be any
// signed value; color and icon fall back to the configured defaults.
func (s *accountService) Create(userID, name string, balance int64, color, icon string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if userID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user ID is required")
	}

	if color == "" {
		color = s.defaults.Color
	}
	if icon == "" {
		icon = s.defaults.Icon
	}

	account := &models.Account{
		UserID:  userID,
		Name:    name,
		Balance: balance,
		Color:   color,
		Icon:    icon,
	}

	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetByID retrieves an account by ID.
func (s *accountService) GetByID(id string) (*models.Account, error) {
	account, err := s.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return account, nil
}

// Update edits an existing account's presentation fields. Balance cannot be
// edited here; it only moves through transaction creation.
func (s *accountService) Update(id string, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.ErrResourceNotFound
	}

	if fields.Name != nil && *fields.Name != "" {
		account.Name = *fields.Name
	}
	if fields.Color != nil {
		account.Color = *fields.Color
	}
	if fields.Icon != nil {
		account.Icon = *fields.Icon
	}

	if err := s.accounts.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes an account. Transactions referencing the account are left
// in place; the dashboard join simply no longer finds their account.
func (s *accountService) Delete(id string) error {
	account, err := s.accounts.FindByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return apperrors.ErrResourceNotFound
	}
	return s.accounts.Delete(id)
}

// List returns accounts, scoped to a user when userID is non-empty. An empty
// result is success, never an error.
func (s *accountService) List(userID string) ([]models.Account, error) {
	if userID == "" {
		return s.accounts.FindAll()
	}
	return s.accounts.FetchByUserID(userID)
}
