package compare

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/catalog"
)

func TestFieldsForKnownCategories(t *testing.T) {
	for _, category := range catalog.Categories {
		if len(FieldsFor(category)) == 0 {
			t.Fatalf("expected comparison fields for %s", category)
		}
	}
}

func TestBuildTableSkipsWrongCategory(t *testing.T) {
	components := []catalog.Component{
		{ID: 1, Category: catalog.CategoryCPU, Name: "CPU A"},
		{ID: 2, Category: catalog.CategoryGPU, Name: "GPU B"},
		{ID: 3, Category: catalog.CategoryCPU, Name: "CPU C"},
	}
	table := BuildTable(catalog.CategoryCPU, components)
	if len(table.Components) != 2 {
		t.Fatalf("expected 2 CPUs in table, got %d", len(table.Components))
	}
	for _, c := range table.Components {
		if c.Category != catalog.CategoryCPU {
			t.Fatalf("unexpected category in table: %s", c.Category)
		}
	}
}

func TestBuildTableCapsAtFour(t *testing.T) {
	var components []catalog.Component
	for i := int64(1); i <= 6; i++ {
		components = append(components, catalog.Component{ID: i, Category: catalog.CategoryRAM})
	}
	table := BuildTable(catalog.CategoryRAM, components)
	if len(table.Components) != MaxComponents {
		t.Fatalf("expected cap of %d, got %d", MaxComponents, len(table.Components))
	}
}

func compareRouter(repo catalog.Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(repo).RegisterRoutes(api)
	return router
}

func TestCompareEndpoint(t *testing.T) {
	repo := catalog.NewMemoryRepo()
	a := repo.Put(catalog.Component{Name: "CPU A", Category: catalog.CategoryCPU, Price: 100, Specs: catalog.Specs{"cores": 6}})
	b := repo.Put(catalog.Component{Name: "CPU B", Category: catalog.CategoryCPU, Price: 200, Specs: catalog.Specs{"cores": 8}})
	router := compareRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/compare?category=cpu&ids=1,2", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var table Table
	if err := json.Unmarshal(resp.Body.Bytes(), &table); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(table.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(table.Components))
	}
	if table.Components[0].ID != a.ID || table.Components[1].ID != b.ID {
		t.Fatalf("unexpected component order: %+v", table.Components)
	}
}

func TestCompareEndpointValidation(t *testing.T) {
	repo := catalog.NewMemoryRepo()
	repo.Put(catalog.Component{Name: "CPU A", Category: catalog.CategoryCPU})
	router := compareRouter(repo)

	cases := []string{
		"/api/v1/compare?category=case&ids=1,2",
		"/api/v1/compare?category=cpu&ids=1",
		"/api/v1/compare?category=cpu&ids=1,2,3,4,5",
		"/api/v1/compare?category=cpu&ids=1,x",
	}
	for _, path := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, resp.Code)
		}
	}
}
