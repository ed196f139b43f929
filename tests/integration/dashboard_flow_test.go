package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestDashboardFlow_EmptyUser(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "dash-empty@test.com", "password123")

	rec := app.request("GET", "/api/v1/dashboard", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	dashboard := result["dashboard"].(map[string]interface{})

	if total := dashboard["total_balance"].(float64); total != 0 {
		t.Errorf("expected total balance 0, got %v", total)
	}
	if accounts := dashboard["accounts"].([]interface{}); len(accounts) != 0 {
		t.Errorf("expected no accounts, got %d", len(accounts))
	}
}

func TestDashboardFlow_TotalsAndJoins(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "dash@test.com", "password123")
	accountID := app.createAccount(t, token, "Checking", 0)
	categoryID := app.createCategory(t, token, "Salary")

	body := fmt.Sprintf(`{"amount":10000,"type":"income","account_id":%q,"category_id":%q}`, accountID, categoryID)
	rec := app.request("POST", "/api/v1/transactions", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
	body = fmt.Sprintf(`{"amount":2500,"type":"expense","account_id":%q,"category_id":%q}`, accountID, categoryID)
	rec = app.request("POST", "/api/v1/transactions", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/dashboard", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	dashboard := result["dashboard"].(map[string]interface{})

	if got := dashboard["total_balance"].(float64); got != 7500 {
		t.Errorf("expected total balance 7500, got %v", got)
	}
	if got := dashboard["total_income"].(float64); got != 10000 {
		t.Errorf("expected total income 10000, got %v", got)
	}
	if got := dashboard["total_expense"].(float64); got != 2500 {
		t.Errorf("expected total expense 2500, got %v", got)
	}

	byAccount := dashboard["transactions_by_account"].([]interface{})
	if len(byAccount) != 2 {
		t.Fatalf("expected 2 account-joined transactions, got %d", len(byAccount))
	}
	first := byAccount[0].(map[string]interface{})
	if first["account_name"] != "Checking" {
		t.Errorf("expected account name Checking, got %v", first["account_name"])
	}

	byCategory := dashboard["transactions_by_category"].([]interface{})
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 category-joined transactions, got %d", len(byCategory))
	}
	if got := byCategory[0].(map[string]interface{})["category_name"]; got != "Salary" {
		t.Errorf("expected category name Salary, got %v", got)
	}
}

func TestDashboardFlow_OtherUsersInvisible(t *testing.T) {
	app := setupApp(t)
	token1, _ := app.registerUser(t, "dash-u1@test.com", "password123")
	token2, _ := app.registerUser(t, "dash-u2@test.com", "password123")

	account2 := app.createAccount(t, token2, "Theirs", 9999)
	category2 := app.createCategory(t, token2, "Other")
	body := fmt.Sprintf(`{"amount":500,"type":"income","account_id":%q,"category_id":%q}`, account2, category2)
	rec := app.request("POST", "/api/v1/transactions", body, token2)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/dashboard", "", token1)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	dashboard := result["dashboard"].(map[string]interface{})

	if got := dashboard["total_balance"].(float64); got != 0 {
		t.Errorf("expected total balance 0 for user1, got %v", got)
	}
	if byAccount := dashboard["transactions_by_account"].([]interface{}); len(byAccount) != 0 {
		t.Errorf("expected no transactions for user1, got %d", len(byAccount))
	}
}
