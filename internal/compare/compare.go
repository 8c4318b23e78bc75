// Package compare builds side-by-side spec tables for components of one
// category, mirroring the fields shoppers actually weigh per part type.
package compare

import (
	"github.com/moonglae/pc-configurator/internal/catalog"
)

// Field describes one row of a comparison table. Best marks the direction
// that wins for numeric fields ("high" or empty for non-comparable).
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Best  string `json:"best,omitempty"`
}

var fieldsByCategory = map[catalog.Category][]Field{
	catalog.CategoryCPU: {
		{Key: "cores", Label: "Cores", Type: "number", Best: "high"},
		{Key: "threads", Label: "Threads", Type: "number", Best: "high"},
		{Key: "frequency", Label: "Frequency", Type: "text"},
		{Key: "socket", Label: "Socket", Type: "text"},
	},
	catalog.CategoryGPU: {
		{Key: "vram", Label: "Memory size", Type: "text"},
		{Key: "memory_type", Label: "Memory type", Type: "text"},
		{Key: "bus", Label: "Bus", Type: "text"},
	},
	catalog.CategoryMotherboard: {
		{Key: "socket", Label: "Socket", Type: "text"},
		{Key: "form_factor", Label: "Form factor", Type: "text"},
		{Key: "ram_slots", Label: "RAM slots", Type: "number", Best: "high"},
	},
	catalog.CategoryRAM: {
		{Key: "capacity", Label: "Capacity", Type: "text"},
		{Key: "type", Label: "Type", Type: "text"},
		{Key: "speed", Label: "Speed", Type: "text"},
	},
	catalog.CategoryPSU: {
		{Key: "power", Label: "Wattage", Type: "text"},
		{Key: "certification", Label: "Certification", Type: "text"},
		{Key: "modular", Label: "Modular", Type: "boolean"},
	},
}

// FieldsFor returns the comparison rows for a category.
func FieldsFor(category catalog.Category) []Field {
	return fieldsByCategory[category]
}

// Table pairs the field layout with the components being compared.
type Table struct {
	Category   catalog.Category    `json:"category"`
	Fields     []Field             `json:"fields"`
	Components []catalog.Component `json:"components"`
}

// MaxComponents caps how many parts one table compares.
const MaxComponents = 4

// BuildTable assembles a comparison for components of a single category.
// Components of other categories are silently skipped; the spec map itself
// travels with each component so missing values render as absent.
func BuildTable(category catalog.Category, components []catalog.Component) Table {
	table := Table{Category: category, Fields: FieldsFor(category), Components: []catalog.Component{}}
	for _, component := range components {
		if component.Category != category {
			continue
		}
		if len(table.Components) == MaxComponents {
			break
		}
		table.Components = append(table.Components, component)
	}
	return table
}
