package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rp-community-api/middleware"
	"rp-community-api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func stubDiscord(t *testing.T, profile *discordgo.User) {
	t.Helper()

	prevExchange, prevFetch := exchangeCode, fetchProfile
	exchangeCode = func(code string) (string, error) { return "access-token", nil }
	fetchProfile = func(accessToken string) (*discordgo.User, error) { return profile, nil }
	t.Cleanup(func() {
		exchangeCode, fetchProfile = prevExchange, prevFetch
	})
}

func TestDiscordLoginKeepsStoredRole(t *testing.T) {
	mock := newMockDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	stubDiscord(t, &discordgo.User{ID: "555", Username: "kane", Discriminator: "0"})

	// Returning admin signs in again: the upsert must not touch role.
	mock.ExpectExec("INSERT INTO `users` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(7, 2))

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `users` WHERE discord_id = \\?").
		WithArgs("555", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "discord_id", "username", "discriminator", "role", "create_at", "update_at"}).
			AddRow(7, "555", "kane", "0", models.RoleAdmin, now, now))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/auth/discord",
		strings.NewReader(`{"code":"abc"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	DiscordLogin(c)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Role != models.RoleAdmin {
		t.Fatalf("sign-in reset stored role to %q", resp.User.Role)
	}
	if resp.User.UserID != 7 {
		t.Fatalf("expected stored user id 7, got %d", resp.User.UserID)
	}
	if resp.Token == "" {
		t.Fatal("no session token issued")
	}

	claims := &middleware.Claims{}
	if _, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Role != models.RoleAdmin || claims.DiscordID != "555" {
		t.Fatalf("token claims carry wrong identity: %+v", claims)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetProfileReportsAdminFlag(t *testing.T) {
	mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `users` WHERE user_id = \\?").
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "discord_id", "username", "discriminator", "role", "create_at", "update_at"}).
			AddRow(7, "555", "kane", "0", models.RoleAdmin, now, now))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/profile", nil)
	c.Set("userID", 7)

	GetProfile(c)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		IsAdmin bool `json:"is_admin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || !body.IsAdmin {
		t.Fatalf("admin flag missing: %s", w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
