package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/orders"
)

func claimRouter(orderRepo orders.Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewService(orderRepo))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("isGuest", false)
		c.Next()
	})
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func TestClaimGuestMigratesOrders(t *testing.T) {
	orderRepo := orders.NewMemoryRepo()
	router := claimRouter(orderRepo)

	guestID := "11111111-1111-1111-1111-111111111111"
	guestUserID := "guest:" + guestID

	order := orders.Order{
		ID:              "order-1",
		UserID:          guestUserID,
		CustomerName:    "Alex",
		Phone:           "+1-555-0100",
		DeliveryAddress: "1 Main St",
		PaymentMethod:   "card",
		TotalPrice:      999,
		ComponentIDs:    []int64{1, 2, 3},
		Status:          orders.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := orderRepo.Create(context.Background(), order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	claimed, err := orderRepo.ListByUser(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(claimed) != 1 {
		t.Fatalf("expected 1 migrated order, got %d", len(claimed))
	}
	left, err := orderRepo.ListByUser(context.Background(), guestUserID, 10, 0)
	if err != nil {
		t.Fatalf("list guest orders: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected no orders left on guest, got %d", len(left))
	}
}

func TestClaimGuestIdempotentAndIsolated(t *testing.T) {
	orderRepo := orders.NewMemoryRepo()
	router := claimRouter(orderRepo)

	guestID := "22222222-2222-2222-2222-222222222222"
	guestUserID := "guest:" + guestID

	order := orders.Order{
		ID:              "order-2",
		UserID:          guestUserID,
		CustomerName:    "Sam",
		Phone:           "+1-555-0101",
		DeliveryAddress: "2 Main St",
		PaymentMethod:   "cash",
		TotalPrice:      500,
		ComponentIDs:    []int64{4},
		Status:          orders.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := orderRepo.Create(context.Background(), order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req2.Header.Set("X-Guest-Id", guestID)
	resp2 := httptest.NewRecorder()
	router.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("expected status 200 on idempotent call, got %d", resp2.Code)
	}

	other, err := orderRepo.ListByUser(context.Background(), "user-2", 10, 0)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no orders for other user, got %d", len(other))
	}
}

func TestClaimGuestRejectsInvalidGuestID(t *testing.T) {
	router := claimRouter(orders.NewMemoryRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req.Header.Set("X-Guest-Id", "not-a-uuid")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
