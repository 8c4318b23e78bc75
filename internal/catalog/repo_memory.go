package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type MemoryRepo struct {
	mu         sync.RWMutex
	components map[int64]Component
	nextID     int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{components: make(map[int64]Component), nextID: 1}
}

// Put inserts or replaces a component. IDs of zero are assigned.
func (r *MemoryRepo) Put(component Component) Component {
	r.mu.Lock()
	defer r.mu.Unlock()
	if component.ID == 0 {
		component.ID = r.nextID
		r.nextID++
	} else if component.ID >= r.nextID {
		r.nextID = component.ID + 1
	}
	if component.Specs == nil {
		component.Specs = Specs{}
	}
	r.components[component.ID] = component
	return component
}

func (r *MemoryRepo) List(ctx context.Context, filter Filter) ([]Component, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	var out []Component
	for _, c := range r.components {
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.MinPrice > 0 && c.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && c.Price > filter.MaxPrice {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			if filter.Sort == "desc" {
				return out[i].Price > out[j].Price
			}
			return out[i].Price < out[j].Price
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Component, error) {
	if err := ctx.Err(); err != nil {
		return Component{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[id]
	if !ok {
		return Component{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryRepo) GetByIDs(ctx context.Context, ids []int64) ([]Component, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Component
	for _, id := range ids {
		if c, ok := r.components[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
