package orders

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

func (r *PGRepo) Create(ctx context.Context, order Order) error {
	ids, err := json.Marshal(order.ComponentIDs)
	if err != nil {
		return fmt.Errorf("marshal component ids: %w", err)
	}
	var userID any
	if order.UserID != "" {
		userID = order.UserID
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, customer_name, phone, delivery_address,
			payment_method, total_price, component_ids, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, order.ID, userID, order.CustomerName, order.Phone, order.DeliveryAddress,
		order.PaymentMethod, order.TotalPrice, ids, order.Status, order.CreatedAt)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, COALESCE(user_id, ''), customer_name, phone, delivery_address,
		       payment_method, total_price, component_ids, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var ids []byte
		if err := rows.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.Phone, &o.DeliveryAddress,
			&o.PaymentMethod, &o.TotalPrice, &ids, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			if err := json.Unmarshal(ids, &o.ComponentIDs); err != nil {
				o.ComponentIDs = nil
			}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE orders SET user_id = $1 WHERE user_id = $2`,
		authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
