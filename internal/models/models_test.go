package models

import (
	"testing"
	"time"
)

func TestAccountUpdateBalance(t *testing.T) {
	account := Account{Base: Base{UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}, Balance: 100}

	account.UpdateBalance(250)

	if account.Balance != 250 {
		t.Errorf("expected balance 250, got %d", account.Balance)
	}
	if !account.UpdatedAt.After(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestCategoryMutators(t *testing.T) {
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	category := Category{Base: Base{UpdatedAt: old}, Name: "Food", Description: "old"}

	category.Rename("Dining")
	if category.Name != "Dining" {
		t.Errorf("expected name Dining, got %q", category.Name)
	}
	if !category.UpdatedAt.After(old) {
		t.Error("expected UpdatedAt to advance on rename")
	}

	stamp := category.UpdatedAt
	category.SetDescription("new")
	if category.Description != "new" {
		t.Errorf("expected description new, got %q", category.Description)
	}
	if category.UpdatedAt.Before(stamp) {
		t.Error("expected UpdatedAt to advance on description change")
	}
}

func TestTransactionMutators(t *testing.T) {
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tx := Transaction{Base: Base{UpdatedAt: old}, Type: TransactionTypeExpense, Amount: 100}

	tx.SetAmount(500)
	if tx.Amount != 500 {
		t.Errorf("expected amount 500, got %d", tx.Amount)
	}
	if !tx.UpdatedAt.After(old) {
		t.Error("expected UpdatedAt to advance on amount change")
	}

	tx.SetType(TransactionTypeIncome)
	if tx.Type != TransactionTypeIncome {
		t.Errorf("expected type income, got %s", tx.Type)
	}
}

func TestViewConstructors(t *testing.T) {
	now := time.Now()
	tx := Transaction{
		Base:        Base{ID: "t1", CreatedAt: now, UpdatedAt: now},
		AccountID:   "a1",
		CategoryID:  "c1",
		Type:        TransactionTypeIncome,
		Amount:      1200,
		Description: "Salary",
		Date:        now,
	}

	byAccount := NewTransactionWithAccountName(tx, "Checking")
	if byAccount.AccountName != "Checking" {
		t.Errorf("expected account name Checking, got %q", byAccount.AccountName)
	}
	if byAccount.Amount != 1200 || byAccount.CategoryID != "c1" {
		t.Error("expected transaction fields to carry over")
	}

	byCategory := NewTransactionWithCategoryName(tx, "Income")
	if byCategory.CategoryName != "Income" {
		t.Errorf("expected category name Income, got %q", byCategory.CategoryName)
	}
	if byCategory.AccountID != "a1" {
		t.Error("expected account reference to carry over")
	}
}
