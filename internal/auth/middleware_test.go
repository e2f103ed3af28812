package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dhwani-platform/internal/config"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *MemoryKeyStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, err := NewManager(config.AuthConfig{JWTSecret: "secret"})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	keys := NewMemoryKeyStore()

	r := gin.New()
	r.GET("/protected", RequireAccount(m, keys, "dhwani_"), func(c *gin.Context) {
		id, err := AccountID(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r, keys
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAccountWithSessionToken(t *testing.T) {
	r, _ := newAuthRouter(t)
	tok := signToken(t, "secret", "", "", "user-1", TokenTypeAccess, time.Now(), time.Minute)

	w := get(r, "Bearer "+tok)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestRequireAccountWithAPIKey(t *testing.T) {
	r, keys := newAuthRouter(t)
	keys.Keys["dhwani_live_abc123"] = "user-2"

	w := get(r, "Bearer dhwani_live_abc123")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestRequireAccountRejectsUnknownAPIKey(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := get(r, "Bearer dhwani_live_unknown")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRequireAccountRejectsMissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if w := get(r, "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRequireAccountRejectsGarbageToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := get(r, "Bearer not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}
