package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Michaux-Technology/Geco-SchoolPlan/config"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/jwt"
)

func protectedRouter(jwtMgr *jwt.Manager, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth(jwtMgr, nil)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleAuth(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	r.GET("/protected", handlers...)
	return r
}

func getProtected(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-0123456789",
		TokenTTL:  time.Hour,
	})
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	mgr := testJWTManager()
	r := protectedRouter(mgr)

	token, err := mgr.GenerateMobileToken("enseignant", "enseignant")
	if err != nil {
		t.Fatal(err)
	}

	if w := getProtected(r, token); w.Code != http.StatusOK {
		t.Fatalf("valid token got status %d: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthRejectsMissingAndGarbageTokens(t *testing.T) {
	r := protectedRouter(testJWTManager())

	if w := getProtected(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header got status %d", w.Code)
	}
	if w := getProtected(r, "not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token got status %d", w.Code)
	}
}

func TestRoleAuthGatesByRole(t *testing.T) {
	mgr := testJWTManager()
	r := protectedRouter(mgr, "enseignant")

	teacher, err := mgr.GenerateMobileToken("enseignant", "enseignant")
	if err != nil {
		t.Fatal(err)
	}
	student, err := mgr.GenerateMobileToken("eleve", "eleve")
	if err != nil {
		t.Fatal(err)
	}

	if w := getProtected(r, teacher); w.Code != http.StatusOK {
		t.Errorf("allowed role got status %d", w.Code)
	}
	if w := getProtected(r, student); w.Code != http.StatusForbidden {
		t.Errorf("forbidden role got status %d", w.Code)
	}
}
