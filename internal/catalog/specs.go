package catalog

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Spec-field resolvers. Catalog data is incomplete in places, so every
// field used by the rule engines resolves through an explicit fallback
// chain (spec value, then inference from the product name, then a zero
// value meaning "unknown"). Keeping these out of the rule code means a
// data-quality fix never touches rule evaluation.

// gpuTDPByName maps GPU model substrings to a board power draw in watts.
// Covers the catalog's current generation; unknown models resolve to 0,
// which the wattage rule treats as "do not block".
var gpuTDPByName = []struct {
	Substr string
	TDP    float64
}{
	{"4090", 450},
	{"4080", 320},
	{"4070", 200},
	{"4060", 130},
	{"7900", 420},
	{"7800", 310},
}

// Score returns the relative performance rating, or 0 when absent.
func (s Specs) Score() float64 {
	return s.number("score")
}

// Socket returns the normalized (upper-cased, trimmed) socket string.
func (s Specs) Socket() string {
	return strings.ToUpper(strings.TrimSpace(s.str("socket")))
}

// ResolveMemoryType returns the raw memory-type string for a component:
// specs.type for RAM, specs.memory_type for motherboards, falling back to
// the product name when the spec field is missing.
func ResolveMemoryType(c Component) string {
	var raw string
	switch c.Category {
	case CategoryRAM:
		raw = c.Specs.str("type")
	case CategoryMotherboard:
		raw = c.Specs.str("memory_type")
	}
	if strings.TrimSpace(raw) == "" {
		raw = c.Name
	}
	return strings.ToUpper(strings.TrimSpace(raw))
}

// DDRGeneration is the detected memory generation of a component.
type DDRGeneration int

const (
	DDRUnknown DDRGeneration = iota
	DDR4
	DDR5
)

func (g DDRGeneration) String() string {
	switch g {
	case DDR4:
		return "DDR4"
	case DDR5:
		return "DDR5"
	}
	return "unknown"
}

// DetectDDR classifies an upper-cased memory-type string by substring.
// Strings mentioning neither generation stay unknown, which the rules
// treat as compatible.
func DetectDDR(upper string) DDRGeneration {
	switch {
	case strings.Contains(upper, "DDR5") || strings.Contains(upper, "DDR-5"):
		return DDR5
	case strings.Contains(upper, "DDR4") || strings.Contains(upper, "DDR-4"):
		return DDR4
	}
	return DDRUnknown
}

// ResolveTDP returns a GPU's thermal design power in watts. Prefers
// specs.tdp; otherwise infers from the model number in the name.
func ResolveTDP(c Component) float64 {
	if tdp := c.Specs.number("tdp"); tdp > 0 {
		return tdp
	}
	name := c.Name
	for _, entry := range gpuTDPByName {
		if strings.Contains(name, entry.Substr) {
			return entry.TDP
		}
	}
	return 0
}

// ResolveWattage returns a PSU's rated wattage. Prefers specs.wattage;
// otherwise parses the first integer immediately followed by a wattage
// marker in the name ("750W Gold", "650w", "850в"). Unparsable names
// resolve to 0.
func ResolveWattage(c Component) float64 {
	if w := c.Specs.number("wattage"); w > 0 {
		return w
	}
	runes := []rune(c.Name)
	for i := 0; i < len(runes); i++ {
		if !unicode.IsDigit(runes[i]) {
			continue
		}
		j := i
		value := 0
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			value = value*10 + int(runes[j]-'0')
			j++
		}
		if j < len(runes) && isWattMarker(runes[j]) {
			return float64(value)
		}
		i = j
	}
	return 0
}

func isWattMarker(r rune) bool {
	switch r {
	case 'W', 'w', 'в', 'В':
		return true
	}
	return false
}

func (s Specs) number(key string) float64 {
	if s == nil {
		return 0
	}
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func (s Specs) str(key string) string {
	if s == nil {
		return ""
	}
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}
