package services

import (
	"sort"

	"moneta/internal/models"
	"moneta/internal/repository"
)

// dashboardService assembles the consolidated per-user dashboard view.
type dashboardService struct {
	transactions repository.TransactionRepository
	accounts     repository.AccountRepository
	categories   repository.CategoryRepository
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(
	transactions repository.TransactionRepository,
	accounts repository.AccountRepository,
	categories repository.CategoryRepository,
) DashboardServicer {
	return &dashboardService{
		transactions: transactions,
		accounts:     accounts,
		categories:   categories,
	}
}

// GetDashboardInfo fans out across the user's accounts and categories, joins
// each against the transaction collection, and returns the sorted, totalled
// view. Totals are always derived from the account-joined sequence: the two
// sequences can disagree when an account or category was deleted after its
// transactions were created, and the account side is the one the balances
// belong to.
func (s *dashboardService) GetDashboardInfo(userID string) (*DashboardInfo, error) {
	accounts, err := s.accounts.FetchByUserID(userID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	byAccount := []models.TransactionWithAccountName{}
	for _, account := range accounts {
		transactions, err := s.transactions.FindByAccountID(account.ID)
		if err != nil {
			return nil, err
		}
		for _, transaction := range transactions {
			byAccount = append(byAccount, models.NewTransactionWithAccountName(transaction, account.Name))
		}
	}

	categories, err := s.categories.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	byCategory := []models.TransactionWithCategoryName{}
	for _, category := range categories {
		transactions, err := s.transactions.FindByCategoryID(category.ID)
		if err != nil {
			return nil, err
		}
		for _, transaction := range transactions {
			byCategory = append(byCategory, models.NewTransactionWithCategoryName(transaction, category.Name))
		}
	}

	// Most recently recorded first; stable so ties keep input order.
	sort.SliceStable(byAccount, func(i, j int) bool {
		return byAccount[i].CreatedAt.After(byAccount[j].CreatedAt)
	})
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].CreatedAt.After(byCategory[j].CreatedAt)
	})

	var totalBalance, totalIncome, totalExpense int64
	for _, account := range accounts {
		totalBalance += account.Balance
	}
	for _, transaction := range byAccount {
		switch transaction.Type {
		case models.TransactionTypeIncome:
			totalIncome += transaction.Amount
		case models.TransactionTypeExpense:
			totalExpense += transaction.Amount
		}
	}

	return &DashboardInfo{
		Accounts:               accounts,
		TransactionsByAccount:  byAccount,
		TransactionsByCategory: byCategory,
		TotalBalance:           totalBalance,
		TotalIncome:            totalIncome,
		TotalExpense:           totalExpense,
	}, nil
}
