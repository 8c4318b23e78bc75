package orders

import "time"

// Order statuses follow the fulfillment pipeline; new orders start pending.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDone      = "done"
)

type Order struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId,omitempty"`
	CustomerName    string    `json:"customerName"`
	Phone           string    `json:"phone"`
	DeliveryAddress string    `json:"deliveryAddress"`
	PaymentMethod   string    `json:"paymentMethod"`
	TotalPrice      float64   `json:"totalPrice"`
	ComponentIDs    []int64   `json:"componentIds"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Summary is the listing shape for a profile page: the order plus the
// hydrated component names.
type Summary struct {
	Order
	ComponentCount int      `json:"componentCount"`
	ComponentNames []string `json:"componentNames"`
}
