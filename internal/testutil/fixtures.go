package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneta/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", nextID()),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates an account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, userID, 0)
}

// CreateTestAccountWithBalance creates an account with the given balance (in cents).
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, userID string, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:  userID,
		Name:    fmt.Sprintf("Test Account %d", nextID()),
		Balance: balance,
		Color:   "#336699",
		Icon:    "wallet",
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category owned by the given user.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Color:  "#996633",
		Icon:   "tag",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given type and amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID, categoryID string, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       txType,
		Amount:     amount,
		Date:       time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
