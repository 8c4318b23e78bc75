package catalog

import "encoding/json"

// Category is one of the five component slots in a build.
type Category string

const (
	CategoryCPU         Category = "cpu"
	CategoryMotherboard Category = "motherboard"
	CategoryRAM         Category = "ram"
	CategoryGPU         Category = "gpu"
	CategoryPSU         Category = "psu"
)

// Categories lists all slots in the order builds are assembled and validated.
var Categories = []Category{
	CategoryCPU,
	CategoryMotherboard,
	CategoryRAM,
	CategoryGPU,
	CategoryPSU,
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCPU, CategoryMotherboard, CategoryRAM, CategoryGPU, CategoryPSU:
		return true
	}
	return false
}

// Specs is the sparse, heterogeneous spec map attached to a component.
// Values are numbers, strings or booleans; absent keys are expected and
// resolved with fallbacks (see specs.go).
type Specs map[string]any

// Component is a single catalog entry.
type Component struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    float64  `json:"price"`
	ImageURL string   `json:"image_url,omitempty"`
	Specs    Specs    `json:"specs"`
}

// SpecsJSON marshals the specs map for storage; empty maps become "{}".
func (c Component) SpecsJSON() ([]byte, error) {
	if c.Specs == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.Specs)
}
