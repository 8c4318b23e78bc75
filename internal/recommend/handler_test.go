package recommend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/catalog"
)

func recommendRouter(repo catalog.Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	h := NewHandler(repo)
	h.RegisterRoutes(api)
	h.RegisterBuildRoutes(api)
	return router
}

func memoryRepoFromCatalog(t *testing.T) *catalog.MemoryRepo {
	t.Helper()
	repo := catalog.NewMemoryRepo()
	for _, items := range testCatalog() {
		for _, item := range items {
			item.ID = 0
			repo.Put(item)
		}
	}
	return repo
}

func TestRecommendEndpointHappyPath(t *testing.T) {
	router := recommendRouter(memoryRepoFromCatalog(t))

	body := `{"game_id":"cs2","budget_id":"mid","resolution":"1080p","target_fps":60,"quality":"High"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/builds/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := payload["components"]; !ok {
		t.Fatalf("expected components in response")
	}
	spent, _ := payload["budget_spent"].(string)
	if !strings.HasPrefix(spent, "$") || !strings.Contains(spent, " / $1000") {
		t.Fatalf("unexpected budget_spent: %q", spent)
	}
	if _, ok := payload["fps_forecast"]; !ok {
		t.Fatalf("expected fps_forecast in response")
	}
}

func TestRecommendEndpointValidation(t *testing.T) {
	router := recommendRouter(memoryRepoFromCatalog(t))

	cases := []struct {
		name string
		body string
	}{
		{"unknown game", `{"game_id":"quake","budget_id":"mid","resolution":"1080p","target_fps":60,"quality":"High"}`},
		{"unknown budget", `{"game_id":"cs2","budget_id":"huge","resolution":"1080p","target_fps":60,"quality":"High"}`},
		{"bad resolution", `{"game_id":"cs2","budget_id":"mid","resolution":"720p","target_fps":60,"quality":"High"}`},
		{"bad fps", `{"game_id":"cs2","budget_id":"mid","resolution":"1080p","target_fps":75,"quality":"High"}`},
		{"bad quality", `{"game_id":"cs2","budget_id":"mid","resolution":"1080p","target_fps":60,"quality":"Epic"}`},
		{"custom without value", `{"game_id":"cs2","budget_id":"custom","resolution":"1080p","target_fps":60,"quality":"High"}`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/builds/recommend", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, resp.Code)
		}
	}
}

func TestGamesAndBudgetsEndpoints(t *testing.T) {
	router := recommendRouter(memoryRepoFromCatalog(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("games: expected 200, got %d", resp.Code)
	}
	var games []GameProfile
	if err := json.Unmarshal(resp.Body.Bytes(), &games); err != nil {
		t.Fatalf("decode games: %v", err)
	}
	if len(games) != len(Games) {
		t.Fatalf("expected %d games, got %d", len(Games), len(games))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/budgets", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("budgets: expected 200, got %d", resp.Code)
	}
}
