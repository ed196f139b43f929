package services

import (
	"testing"
	"time"

	"moneta/internal/models"
	"moneta/internal/repository"
	"moneta/internal/testutil"

	"gorm.io/gorm"
)

func newTransactionService(db *gorm.DB) (TransactionServicer, repository.AccountRepository, repository.TransactionRepository) {
	accountRepo := repository.NewGormAccountRepository(db)
	categoryRepo := repository.NewGormCategoryRepository(db)
	transactionRepo := repository.NewGormTransactionRepository(db)
	return NewTransactionService(transactionRepo, accountRepo, categoryRepo), accountRepo, transactionRepo
}

func TestCreateTransaction(t *testing.T) {
	t.Run("income_increases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, accountRepo, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		category := testutil.CreateTestCategory(t, db, user.ID)

		tx, err := svc.Create(5000, models.TransactionTypeIncome, "Salary", time.Now(), account.ID, category.ID)
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
		if tx.Amount != 5000 {
			t.Errorf("expected amount 5000, got %d", tx.Amount)
		}

		updated, err := accountRepo.FindByID(account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 5000 {
			t.Errorf("expected balance 5000, got %d", updated.Balance)
		}
	})

	t.Run("expense_decreases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, accountRepo, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 10000)
		category := testutil.CreateTestCategory(t, db, user.ID)

		_, err := svc.Create(3000, models.TransactionTypeExpense, "Lunch", time.Now(), account.ID, category.ID)
		testutil.AssertNoError(t, err)

		updated, err := accountRepo.FindByID(account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 7000 {
			t.Errorf("expected balance 7000, got %d", updated.Balance)
		}
	})

	t.Run("expense_can_drive_balance_negative", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, accountRepo, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000)
		category := testutil.CreateTestCategory(t, db, user.ID)

		_, err := svc.Create(2500, models.TransactionTypeExpense, "Overdraft", time.Now(), account.ID, category.ID)
		testutil.AssertNoError(t, err)

		updated, err := accountRepo.FindByID(account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != -1500 {
			t.Errorf("expected balance -1500, got %d", updated.Balance)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		category := testutil.CreateTestCategory(t, db, user.ID)

		_, err := svc.Create(0, models.TransactionTypeIncome, "", time.Now(), account.ID, category.ID)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		category := testutil.CreateTestCategory(t, db, user.ID)

		_, err := svc.Create(-100, models.TransactionTypeIncome, "", time.Now(), account.ID, category.ID)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		category := testutil.CreateTestCategory(t, db, user.ID)

		_, err := svc.Create(1000, models.TransactionType("transfer"), "", time.Now(), account.ID, category.ID)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		_, err := svc.Create(1000, models.TransactionTypeIncome, "", time.Now(), account.ID, "b3c98c06-2a4e-4f8b-9c1d-000000000000")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("missing_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		_, err := svc.Create(1000, models.TransactionTypeIncome, "", time.Now(), "b3c98c06-2a4e-4f8b-9c1d-000000000000", category.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	// When both lookups fail, the category error wins.
	t.Run("both_missing_reports_category_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)

		_, err := svc.Create(1000, models.TransactionTypeIncome, "", time.Now(),
			"b3c98c06-2a4e-4f8b-9c1d-000000000001", "b3c98c06-2a4e-4f8b-9c1d-000000000002")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("failed_create_persists_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, accountRepo, transactionRepo := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 5000)

		_, err := svc.Create(1000, models.TransactionTypeExpense, "", time.Now(), account.ID, "b3c98c06-2a4e-4f8b-9c1d-000000000000")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")

		transactions, err := transactionRepo.FindByAccountID(account.ID)
		testutil.AssertNoError(t, err)
		if len(transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(transactions))
		}

		unchanged, err := accountRepo.FindByID(account.ID)
		testutil.AssertNoError(t, err)
		if unchanged.Balance != 5000 {
			t.Errorf("expected balance 5000, got %d", unchanged.Balance)
		}
	})

	t.Run("zero_date_defaults_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		category := testutil.CreateTestCategory(t, db, user.ID)

		tx, err := svc.Create(1000, models.TransactionTypeIncome, "", time.Time{}, account.ID, category.ID)
		testutil.AssertNoError(t, err)
		if tx.Date.IsZero() {
			t.Error("expected transaction date to default to the current time")
		}
	})
}

func TestGetTransactionByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		category := testutil.CreateTestCategory(t, db, user.ID)
		tx := testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeIncome, 2500)

		found, err := svc.GetByID(tx.ID)
		testutil.AssertNoError(t, err)
		if found.Amount != 2500 {
			t.Errorf("expected amount 2500, got %d", found.Amount)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)

		_, err := svc.GetByID("b3c98c06-2a4e-4f8b-9c1d-000000000000")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("filters_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeIncome, 1000)
		testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeExpense, 500)
		testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeExpense, 300)

		txType := models.TransactionTypeExpense
		transactions, total, err := svc.List(repository.TransactionFilter{UserID: user.ID, Type: &txType})
		testutil.AssertNoError(t, err)
		if total != 2 {
			t.Errorf("expected total 2, got %d", total)
		}
		for _, tx := range transactions {
			if tx.Type != models.TransactionTypeExpense {
				t.Errorf("expected only expenses, got %s", tx.Type)
			}
		}
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		account1 := testutil.CreateTestAccount(t, db, user1.ID)
		account2 := testutil.CreateTestAccount(t, db, user2.ID)
		category := testutil.CreateTestCategory(t, db, user1.ID)
		testutil.CreateTestTransaction(t, db, account1.ID, category.ID, models.TransactionTypeIncome, 1000)
		testutil.CreateTestTransaction(t, db, account2.ID, category.ID, models.TransactionTypeIncome, 2000)

		_, total, err := svc.List(repository.TransactionFilter{UserID: user1.ID})
		testutil.AssertNoError(t, err)
		if total != 1 {
			t.Errorf("expected total 1, got %d", total)
		}
	})

	t.Run("missing_user_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _, _ := newTransactionService(db)

		_, _, err := svc.List(repository.TransactionFilter{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
