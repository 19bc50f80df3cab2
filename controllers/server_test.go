package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rp-community-api/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestPostServerActionLogsSuccess(t *testing.T) {
	mock := newMockDB(t)

	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer remote.Close()

	Fivem = &services.FivemClient{BaseURL: remote.URL, Token: "secret", Client: remote.Client()}
	defer func() { Fivem = nil }()

	mock.ExpectExec("INSERT INTO `admin_logs`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("discordID", "1001")
	c.Set("userName", "Admin")
	c.Request = httptest.NewRequest("POST", "/api/v1/admin/server/action",
		strings.NewReader(`{"action":"heal","player_id":"12"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	PostServerAction(c)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPostServerActionRemoteFailureIsSoft(t *testing.T) {
	newMockDB(t)

	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer remote.Close()

	Fivem = &services.FivemClient{BaseURL: remote.URL, Client: remote.Client()}
	defer func() { Fivem = nil }()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/admin/server/action",
		strings.NewReader(`{"action":"heal"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	PostServerAction(c)

	if w.Code != 502 {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Fatalf("expected soft error body, got %s", w.Body.String())
	}
}
