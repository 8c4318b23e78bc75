package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func usersRouter(svc *Service, identity func(c *gin.Context)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if identity != nil {
		router.Use(func(c *gin.Context) {
			identity(c)
			c.Next()
		})
	}
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestSignUpIssuesToken(t *testing.T) {
	router := usersRouter(NewService(NewMemoryRepo()), nil)

	body := `{"email":"a@b.com","password":"hunter22","fullName":"Alex"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-up", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["token"] == "" || payload["id"] == "" {
		t.Fatalf("expected id and token, got %v", payload)
	}
}

func TestSignUpDuplicateEmailConflicts(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	router := usersRouter(svc, nil)

	body := `{"email":"a@b.com","password":"hunter22"}`
	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-up", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != want {
			t.Fatalf("attempt %d: expected %d, got %d", i+1, want, resp.Code)
		}
	}
}

func TestSignInWrongPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	router := usersRouter(svc, nil)

	signUp := `{"email":"a@b.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-up", strings.NewReader(signUp))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	signIn := `{"email":"a@b.com","password":"nope"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", strings.NewReader(signIn))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestMeRejectsGuests(t *testing.T) {
	router := usersRouter(NewService(NewMemoryRepo()), func(c *gin.Context) {
		c.Set("userId", "guest:abc")
		c.Set("isGuest", true)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest, got %d", resp.Code)
	}
}

func TestMeReturnsProfile(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	user, err := svc.Register(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "a@b.com", "hunter22", "Alex")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	router := usersRouter(svc, func(c *gin.Context) {
		c.Set("userId", user.ID)
		c.Set("isGuest", false)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["email"] != "a@b.com" || payload["fullName"] != "Alex" {
		t.Fatalf("unexpected profile: %v", payload)
	}
}

func TestUpdateProfileChangesName(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	user, err := svc.Register(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "a@b.com", "hunter22", "Alex")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	router := usersRouter(svc, func(c *gin.Context) {
		c.Set("userId", user.ID)
		c.Set("isGuest", false)
	})

	body := `{"fullName":"Alexis"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/me", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	got, err := svc.GetByID(req.Context(), user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FullName != "Alexis" {
		t.Fatalf("expected updated name, got %q", got.FullName)
	}
}
