package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/studiofolio/internal/handler"
	"github.com/studiofolio/internal/service"
	"github.com/studiofolio/internal/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth, err := service.NewAuthService(service.AuthConfig{Password: "test-secret"})
	if err != nil {
		t.Fatalf("failed to build auth service: %v", err)
	}
	api := handler.NewAPI(handler.Services{Auth: auth}, storage.NewAdapter(nil, ""), nil)
	return SetupRouter(api, Options{})
}

func TestSetupRouterRegistersRouteTable(t *testing.T) {
	r := newTestRouter(t)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /ping",
		"POST /auth/login",
		"GET /portfolio",
		"GET /portfolio/categories",
		"GET /admin/portfolio/:id",
		"POST /admin/portfolio",
		"PUT /admin/portfolio/:id",
		"DELETE /admin/portfolio/:id",
		"POST /admin/portfolio/categories",
		"PUT /admin/portfolio/categories/:id",
		"DELETE /admin/portfolio/categories/:id",
		"GET /testimonials",
		"GET /admin/testimonials/:id",
		"POST /admin/testimonials",
		"PUT /admin/testimonials/:id",
		"DELETE /admin/testimonials/:id",
		"GET /blog",
		"GET /blog/:slug",
		"GET /admin/blog/:id",
		"POST /admin/blog",
		"PUT /admin/blog/:id",
		"DELETE /admin/blog/:id",
		"POST /contact",
		"GET /admin/contacts",
		"POST /storage/upload",
		"DELETE /storage/delete",
	}
	for _, route := range expected {
		if !registered[route] {
			t.Errorf("route %q is not registered", route)
		}
	}
	if len(registered) != len(expected) {
		t.Errorf("expected %d routes, got %d", len(expected), len(registered))
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/admin/contacts", "/admin/blog/1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusUnauthorized, rr.Code)
		}
	}
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if rr.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}
