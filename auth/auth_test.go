package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"waymark/globals"
	"waymark/models"
	"waymark/storage"

	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, username, password string) models.User {
	t.Helper()
	s := storage.NewMemStore()
	storage.Current = s

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	u, err := s.CreateUser(context.Background(), models.User{
		Username: username,
		Password: string(hash),
		Role:     []string{"admin"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestLoginSuccess(t *testing.T) {
	seedUser(t, "admin", "admin123")

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	w := httptest.NewRecorder()
	Login(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data["token"] == "" {
		t.Fatal("no token in response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	seedUser(t, "admin", "admin123")

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	w := httptest.NewRecorder()
	Login(w, r, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	seedUser(t, "admin", "admin123")

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"nobody","password":"admin123"}`))
	w := httptest.NewRecorder()
	Login(w, r, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestChangePassword(t *testing.T) {
	u := seedUser(t, "admin", "admin123")

	body := `{"currentPassword":"admin123","newPassword":"betterpass"}`
	r := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", strings.NewReader(body))
	r = r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, u.UserID))
	w := httptest.NewRecorder()
	ChangePassword(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	// old password no longer works
	r = httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	w = httptest.NewRecorder()
	Login(w, r, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("old password still accepted: %d", w.Code)
	}

	// new one does
	r = httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"betterpass"}`))
	w = httptest.NewRecorder()
	Login(w, r, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("new password rejected: %d, body %s", w.Code, w.Body.String())
	}
}

func TestChangePasswordTooShort(t *testing.T) {
	u := seedUser(t, "admin", "admin123")

	body := `{"currentPassword":"admin123","newPassword":"abc"}`
	r := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", strings.NewReader(body))
	r = r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, u.UserID))
	w := httptest.NewRecorder()
	ChangePassword(w, r, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
