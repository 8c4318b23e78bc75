package account

import (
	"context"
	"errors"
	"strings"

	"github.com/moonglae/pc-configurator/internal/orders"
)

type Service struct {
	OrderRepo orders.Repo
}

type ClaimResult struct {
	MigratedOrders int `json:"migratedOrders"`
}

func NewService(orderRepo orders.Repo) *Service {
	return &Service{OrderRepo: orderRepo}
}

// ClaimGuest reassigns every order placed under the guest identity to the
// authenticated account. Safe to call repeatedly; a second call finds
// nothing left to move.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}
	count, err := s.OrderRepo.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedOrders: count}, nil
}
