package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stockroom/stockroom/pkg/router"
)

func TestGroupPrefixAndParams(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	products := api.Group("/products")
	products.Get("/{id}", "products.show", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(router.Param(req, "id")))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/p42", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "p42" {
		t.Errorf("expected param p42, got %q", rec.Body.String())
	}
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/api/products/{id}", "products.show", func(http.ResponseWriter, *http.Request) {})

	url, err := r.URL("products.show", map[string]string{"id": "p1"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/api/products/p1" {
		t.Errorf("expected /api/products/p1, got %q", url)
	}

	if _, err := r.URL("products.show", nil); err == nil {
		t.Error("expected error for missing parameters")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route name")
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	r := router.New()
	marked := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Marked", "yes")
			next.ServeHTTP(w, req)
		})
	}

	api := r.Group("/api", marked)
	api.Get("/ping", "", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong"))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	if rec.Header().Get("X-Marked") != "yes" {
		t.Error("expected group middleware to run")
	}
}

func TestRoutesListsNamedOnly(t *testing.T) {
	r := router.New()
	r.Get("/a", "a", func(http.ResponseWriter, *http.Request) {})
	r.Post("/b", "", func(http.ResponseWriter, *http.Request) {})

	infos := r.Routes()
	if len(infos) != 1 {
		t.Fatalf("expected 1 named route, got %d", len(infos))
	}
	if infos[0].Method != http.MethodGet || infos[0].Path != "/a" {
		t.Errorf("unexpected route info: %+v", infos[0])
	}
}
