package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/globals"
	"github.com/Circulx/Fathom-Legal-sub001/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JwtSecret)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func adminClaims() *Claims {
	return &Claims{
		Username: "admin",
		UserID:   "adm-1",
		Role:     []string{models.RoleAdmin},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestMain(m *testing.M) {
	JwtSecret = []byte("unit-test-secret")
	m.Run()
}

func TestAuthenticate(t *testing.T) {
	var gotUserID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, adminClaims()))
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if gotUserID != "adm-1" {
			t.Errorf("userID = %q", gotUserID)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		claims := adminClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestOptionalAuth(t *testing.T) {
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if userID, _ := r.Context().Value(globals.UserIDKey).(string); userID != "" {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("no token still passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("bad token still passes without claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, adminClaims()))
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		if rec.Code != http.StatusAccepted {
			t.Errorf("status = %d, want 202", rec.Code)
		}
	})
}

func TestHasRole(t *testing.T) {
	base := context.Background()

	if HasRole(base, models.RoleAdmin) {
		t.Error("context without claims should carry no role")
	}

	// A token alone is not enough; the role slice decides.
	viewer := context.WithValue(base, globals.UserIDKey, "u-1")
	viewer = context.WithValue(viewer, globals.RoleKey, []string{"viewer"})
	if HasRole(viewer, models.RoleAdmin, models.RoleSuperAdmin) {
		t.Error("viewer token should not pass an admin role check")
	}

	admin := context.WithValue(base, globals.RoleKey, []string{models.RoleAdmin})
	if !HasRole(admin, models.RoleAdmin, models.RoleSuperAdmin) {
		t.Error("admin role not recognized")
	}
}

func TestRequireRoles(t *testing.T) {
	protected := Chain(Authenticate, RequireRoles(models.RoleAdmin, models.RoleSuperAdmin))(
		func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			w.WriteHeader(http.StatusOK)
		})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, adminClaims()))
		rec := httptest.NewRecorder()
		protected(rec, req, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("wrong role rejected", func(t *testing.T) {
		claims := adminClaims()
		claims.Role = []string{"viewer"}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
		rec := httptest.NewRecorder()
		protected(rec, req, nil)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("no auth rejected before role check", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
