package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func adminRouter() *gin.Engine {
	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(AuthMiddleware(), RequireAdmin())
	admin.GET("/applications", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "data": []string{"secret"}})
	})
	return router
}

func TestAdminRouteWithoutSessionReturns401(t *testing.T) {
	router := adminRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin/applications", nil))

	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Fatalf("expected an error field, got %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Fatalf("data leaked without a session: %s", w.Body.String())
	}
}

func TestMalformedAuthorizationHeaderReturns401(t *testing.T) {
	router := adminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/applications", nil)
	req.Header.Set("Authorization", "Token not-a-bearer")
	router.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAdminRejectsCitizen(t *testing.T) {
	router := gin.New()
	router.GET("/admin/only", func(c *gin.Context) {
		c.Set("role", "citizen")
	}, RequireAdmin(), func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin/only", nil))

	if w.Code != 401 {
		t.Fatalf("expected 401 for non-admin role, got %d", w.Code)
	}
}
