package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/config"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/api/handler"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/api/middleware"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/realtime"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/service"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubReferenceService serves only the teacher listing; the embedded
// interface panics on anything else, which no route under test hits.
type stubReferenceService struct {
	service.ReferenceService
}

func (stubReferenceService) ListEnseignants(context.Context) ([]model.Enseignant, error) {
	return []model.Enseignant{{Nom: "Dupont"}}, nil
}

func newRouterFixture(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret-0123456789", TokenTTL: time.Hour},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	limiter := middleware.NewLoginLimiter(3, 15*time.Minute)
	logger := zap.NewNop()

	svc := &service.Service{Reference: stubReferenceService{}}
	h := handler.NewHandler(svc, nil, limiter, logger)
	gw := realtime.NewGateway(realtime.NewHub(logger), svc, nil, logger)

	return Setup(cfg, h, gw, jwtMgr, nil, limiter, logger), jwtMgr
}

func TestMobileEnseignantsRestrictedToTeacherRole(t *testing.T) {
	r, jwtMgr := newRouterFixture(t)

	cases := []struct {
		role string
		want int
	}{
		{"enseignant", http.StatusOK},
		{"eleve", http.StatusForbidden},
	}
	for _, tc := range cases {
		token, err := jwtMgr.GenerateMobileToken("compte-"+tc.role, tc.role)
		if err != nil {
			t.Fatal(err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/mobile/enseignants", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Errorf("role %s: status = %d, want %d", tc.role, w.Code, tc.want)
		}
	}
}

func TestMobileEnseignantsRejectsMissingToken(t *testing.T) {
	r, _ := newRouterFixture(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/mobile/enseignants", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
