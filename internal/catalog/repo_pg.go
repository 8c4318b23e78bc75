package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context, filter Filter) ([]Component, error) {
	query := `SELECT id, name, category, price, image_url, specs FROM components WHERE 1=1`
	var args []any

	if filter.Category != "" {
		args = append(args, string(filter.Category))
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.MinPrice > 0 {
		args = append(args, filter.MinPrice)
		query += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	if strings.TrimSpace(filter.Search) != "" {
		args = append(args, "%"+strings.TrimSpace(filter.Search)+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.Sort == "desc" {
		query += " ORDER BY price DESC, id"
	} else {
		query += " ORDER BY price ASC, id"
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()

	var out []Component
	for rows.Next() {
		component, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, component)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (Component, error) {
	const query = `SELECT id, name, category, price, image_url, specs FROM components WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, id)
	component, err := scanComponent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Component{}, ErrNotFound
		}
		return Component{}, err
	}
	return component, nil
}

func (r *PGRepo) GetByIDs(ctx context.Context, ids []int64) ([]Component, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(
		`SELECT id, name, category, price, image_url, specs FROM components WHERE id IN (%s) ORDER BY id`,
		strings.Join(placeholders, ","),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get components: %w", err)
	}
	defer rows.Close()

	var out []Component
	for rows.Next() {
		component, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, component)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComponent(row rowScanner) (Component, error) {
	var c Component
	var imageURL sql.NullString
	var rawSpecs []byte
	if err := row.Scan(&c.ID, &c.Name, &c.Category, &c.Price, &imageURL, &rawSpecs); err != nil {
		return Component{}, err
	}
	if imageURL.Valid {
		c.ImageURL = imageURL.String
	}
	if len(rawSpecs) > 0 {
		if err := json.Unmarshal(rawSpecs, &c.Specs); err != nil {
			// Malformed specs degrade to an empty map rather than failing
			// the whole listing.
			c.Specs = Specs{}
		}
	} else {
		c.Specs = Specs{}
	}
	return c, nil
}
