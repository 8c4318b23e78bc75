package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func catalogRouter(repo Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(repo).RegisterRoutes(api)
	return router
}

func seededMemoryRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	repo.Put(Component{Name: "Ryzen 5 7600", Category: CategoryCPU, Price: 219, Specs: Specs{"socket": "AM5", "score": 38}})
	repo.Put(Component{Name: "Core i5-13400F", Category: CategoryCPU, Price: 199, Specs: Specs{"socket": "LGA1700", "score": 36}})
	repo.Put(Component{Name: "RTX 4060", Category: CategoryGPU, Price: 299, Specs: Specs{"tdp": 130, "score": 34}})
	return repo
}

func TestListComponentsByCategory(t *testing.T) {
	router := catalogRouter(seededMemoryRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/components?category=cpu", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out []Component
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 CPUs, got %d", len(out))
	}
	// Default sort is price ascending.
	if out[0].Price > out[1].Price {
		t.Fatalf("expected ascending prices, got %v then %v", out[0].Price, out[1].Price)
	}
}

func TestListComponentsRejectsUnknownCategory(t *testing.T) {
	router := catalogRouter(seededMemoryRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/components?category=case", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestListComponentsSearchAndPriceFilter(t *testing.T) {
	router := catalogRouter(seededMemoryRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/components?search=ryzen&max_price=250", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out []Component
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Ryzen 5 7600" {
		t.Fatalf("unexpected search result: %+v", out)
	}
}

func TestGetComponentNotFound(t *testing.T) {
	router := catalogRouter(seededMemoryRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/components/999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetComponentByID(t *testing.T) {
	repo := seededMemoryRepo()
	router := catalogRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/components/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out Component
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ID != 1 {
		t.Fatalf("expected component 1, got %d", out.ID)
	}
}
