package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	// Step 1: Register
	accessToken, userID := app.registerUser(t, "auth@test.com", "password123")
	if accessToken == "" {
		t.Fatal("expected non-empty token from registration")
	}
	if userID == "" {
		t.Fatal("expected non-empty user ID")
	}

	// Step 2: Login with same credentials
	loginToken := app.loginUser(t, "auth@test.com", "password123")
	if loginToken == "" {
		t.Fatal("expected non-empty token from login")
	}

	// Step 3: Access profile with login access token
	rec := app.request("GET", "/api/v1/auth/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["email"] != "auth@test.com" {
		t.Errorf("expected email auth@test.com, got %v", user["email"])
	}
}

func TestAuthFlow_RegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "dup@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/register",
		`{"email":"dup@test.com","password":"password123","name":"Dup"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %v", errObj["code"])
	}
}

func TestAuthFlow_LoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "wrongpw@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"wrongpw@test.com","password":"not-the-password"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", errObj["code"])
	}
}

func TestAuthFlow_ProtectedRouteWithoutToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/accounts", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_ProtectedRouteWithGarbageToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/accounts", "", "not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d: %s", rec.Code, rec.Body.String())
	}
}
