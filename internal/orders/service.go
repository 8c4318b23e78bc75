package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moonglae/pc-configurator/internal/catalog"
)

// PlaceRequest is the checkout form. Guests may submit it with an empty
// UserID; their orders stay claimable via the guest identity.
type PlaceRequest struct {
	UserID          string
	CustomerName    string
	Phone           string
	DeliveryAddress string
	PaymentMethod   string
	ComponentIDs    []int64
}

var paymentMethods = map[string]bool{
	"card": true,
	"cash": true,
}

type Service struct {
	Repo    Repo
	Catalog catalog.Repo
}

func NewService(repo Repo, cat catalog.Repo) *Service {
	return &Service{Repo: repo, Catalog: cat}
}

// Place validates the checkout form, prices the build server-side from the
// current catalog, and persists the order.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (Order, error) {
	if s == nil || s.Repo == nil || s.Catalog == nil {
		return Order{}, errors.New("orders service not configured")
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.DeliveryAddress = strings.TrimSpace(req.DeliveryAddress)
	if req.CustomerName == "" {
		return Order{}, errors.New("customer name is required")
	}
	if req.Phone == "" {
		return Order{}, errors.New("phone is required")
	}
	if req.DeliveryAddress == "" {
		return Order{}, errors.New("delivery address is required")
	}
	if !paymentMethods[req.PaymentMethod] {
		return Order{}, errors.New("payment method must be card or cash")
	}
	if len(req.ComponentIDs) == 0 {
		return Order{}, errors.New("at least one component is required")
	}

	components, err := s.Catalog.GetByIDs(ctx, req.ComponentIDs)
	if err != nil {
		return Order{}, err
	}
	byID := make(map[int64]catalog.Component, len(components))
	for _, c := range components {
		byID[c.ID] = c
	}
	total := 0.0
	for _, id := range req.ComponentIDs {
		c, ok := byID[id]
		if !ok {
			return Order{}, fmt.Errorf("component %d not found", id)
		}
		total += c.Price
	}

	order := Order{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalPrice:      total,
		ComponentIDs:    req.ComponentIDs,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, order); err != nil {
		return Order{}, err
	}
	return order, nil
}

// ListForUser returns the user's orders newest first, each hydrated with
// the component names still present in the catalog.
func (s *Service) ListForUser(ctx context.Context, userID string, limit, offset int) ([]Summary, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("orders service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id is required")
	}
	list, err := s.Repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	var allIDs []int64
	seen := make(map[int64]bool)
	for _, o := range list {
		for _, id := range o.ComponentIDs {
			if !seen[id] {
				seen[id] = true
				allIDs = append(allIDs, id)
			}
		}
	}
	names := make(map[int64]string)
	if len(allIDs) > 0 && s.Catalog != nil {
		components, err := s.Catalog.GetByIDs(ctx, allIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range components {
			names[c.ID] = c.Name
		}
	}

	out := make([]Summary, 0, len(list))
	for _, o := range list {
		sum := Summary{Order: o, ComponentCount: len(o.ComponentIDs)}
		for _, id := range o.ComponentIDs {
			if name, ok := names[id]; ok {
				sum.ComponentNames = append(sum.ComponentNames, name)
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

// ClaimGuest moves a guest's orders onto an authenticated account.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, errors.New("orders service not configured")
	}
	return s.Repo.ClaimGuest(ctx, guestUserID, authedUserID)
}
