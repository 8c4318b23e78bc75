package catalog

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "component not found" }

// Filter narrows a catalog listing. Zero values mean "no constraint".
type Filter struct {
	Category Category
	MinPrice float64
	MaxPrice float64
	Search   string
	// Sort is "asc" (default) or "desc", applied to price.
	Sort string
}

type Repo interface {
	List(ctx context.Context, filter Filter) ([]Component, error)
	GetByID(ctx context.Context, id int64) (Component, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Component, error)
}
