package orders

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "order not found" }

type Repo interface {
	Create(ctx context.Context, order Order) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error)
	// ClaimGuest reassigns every order owned by guestUserID to authedUserID
	// and returns how many moved.
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}
