package orders

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/shared/metrics"
	"github.com/moonglae/pc-configurator/internal/shared/server/middleware"
	"github.com/moonglae/pc-configurator/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.place)
	rg.GET("/orders", h.list)
}

type placeRequest struct {
	CustomerName    string  `json:"customerName"`
	Phone           string  `json:"phone"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
	ComponentIDs    []int64 `json:"componentIds"`
}

func (h *Handler) place(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}
	var req placeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	order, err := h.Svc.Place(c.Request.Context(), PlaceRequest{
		UserID:          userID,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		ComponentIDs:    req.ComponentIDs,
	})
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	metrics.IncOrderPlaced()
	c.Set("orderId", order.ID)
	respond.JSON(c, http.StatusCreated, order)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.Svc.ListForUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list orders", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"orders": list, "count": len(list)})
}
