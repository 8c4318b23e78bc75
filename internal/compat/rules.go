// Package compat decides whether a set of chosen parts forms a valid
// machine. Rules are pure functions over the candidate component and the
// current build; the first rule that fires wins and its reason is returned
// verbatim to the caller.
package compat

import (
	"fmt"

	"github.com/moonglae/pc-configurator/internal/catalog"
)

// Build maps each category to the selected component, or nil when the slot
// is still empty. At most one component per category.
type Build map[catalog.Category]*catalog.Component

// NewBuild returns a build with every slot explicitly empty.
func NewBuild() Build {
	b := make(Build, len(catalog.Categories))
	for _, category := range catalog.Categories {
		b[category] = nil
	}
	return b
}

// Clone returns a shallow copy; the component pointers are shared.
func (b Build) Clone() Build {
	out := make(Build, len(b))
	for category, component := range b {
		out[category] = component
	}
	return out
}

// Rule checks one constraint. A done result ends evaluation with reason as
// the final verdict: an empty reason is a definitive pass, a non-empty one
// an incompatibility. done=false hands off to the next rule.
type Rule struct {
	Name  string
	Check func(category catalog.Category, candidate catalog.Component, build Build) (reason string, done bool)
}

// Rules in precedence order. Evaluation stops at the first done verdict,
// so earlier rules mask later ones for the same pair.
var Rules = []Rule{
	{Name: "ram-psu-exemption", Check: ramPSUExemption},
	{Name: "cpu-motherboard-socket", Check: socketMatch},
	{Name: "motherboard-ram-memory", Check: memoryGeneration},
	{Name: "psu-gpu-wattage", Check: wattageAdequacy},
}

// Check evaluates the candidate against the current build and returns the
// first incompatibility reason, or "" when the combination is allowed.
func Check(category catalog.Category, candidate catalog.Component, build Build) string {
	for _, rule := range Rules {
		if reason, done := rule.Check(category, candidate, build); done {
			return reason
		}
	}
	return ""
}

// RAM and PSU are defined as always compatible: a selected PSU ends
// evaluation for RAM candidates with a pass before any other rule runs.
func ramPSUExemption(category catalog.Category, _ catalog.Component, build Build) (string, bool) {
	if category == catalog.CategoryRAM && build[catalog.CategoryPSU] != nil {
		return "", true
	}
	return "", false
}

func socketMatch(category catalog.Category, candidate catalog.Component, build Build) (string, bool) {
	var cpu, board *catalog.Component
	switch category {
	case catalog.CategoryCPU:
		cpu = &candidate
		board = build[catalog.CategoryMotherboard]
	case catalog.CategoryMotherboard:
		board = &candidate
		cpu = build[catalog.CategoryCPU]
	default:
		return "", false
	}
	if cpu == nil || board == nil {
		return "", false
	}

	cpuSocket := cpu.Specs.Socket()
	boardSocket := board.Specs.Socket()
	if cpuSocket == "" || boardSocket == "" || cpuSocket == boardSocket {
		return "", false
	}
	return fmt.Sprintf("CPU %s (socket %s) does not fit motherboard %s (socket %s)",
		cpu.Name, cpuSocket, board.Name, boardSocket), true
}

func memoryGeneration(category catalog.Category, candidate catalog.Component, build Build) (string, bool) {
	var ram, board *catalog.Component
	switch category {
	case catalog.CategoryRAM:
		ram = &candidate
		board = build[catalog.CategoryMotherboard]
	case catalog.CategoryMotherboard:
		board = &candidate
		ram = build[catalog.CategoryRAM]
	default:
		return "", false
	}
	if ram == nil || board == nil {
		return "", false
	}

	ramGen := catalog.DetectDDR(catalog.ResolveMemoryType(*ram))
	boardGen := catalog.DetectDDR(catalog.ResolveMemoryType(*board))

	// AM5 boards only take DDR5; reject DDR4 RAM even when the board's own
	// memory-type field is missing.
	if board.Specs.Socket() == "AM5" && ramGen == catalog.DDR4 {
		return fmt.Sprintf("motherboard %s (socket AM5) requires DDR5 memory, but %s is DDR4",
			board.Name, ram.Name), true
	}

	if ramGen == catalog.DDRUnknown || boardGen == catalog.DDRUnknown {
		return "", false
	}
	if ramGen != boardGen {
		return fmt.Sprintf("motherboard %s requires %s memory, but %s is %s",
			board.Name, boardGen, ram.Name, ramGen), true
	}
	return "", false
}

func wattageAdequacy(category catalog.Category, candidate catalog.Component, build Build) (string, bool) {
	var gpu, psu *catalog.Component
	switch category {
	case catalog.CategoryGPU:
		gpu = &candidate
		psu = build[catalog.CategoryPSU]
	case catalog.CategoryPSU:
		psu = &candidate
		gpu = build[catalog.CategoryGPU]
	default:
		return "", false
	}
	if gpu == nil || psu == nil {
		return "", false
	}

	tdp := catalog.ResolveTDP(*gpu)
	required := requiredWattage(tdp)
	if required == 0 {
		return "", false
	}

	wattage := catalog.ResolveWattage(*psu)
	if wattage >= required {
		return "", false
	}
	return fmt.Sprintf("GPU %s (TDP %.0fW) needs a power supply of at least %.0fW, but %s provides %.0fW",
		gpu.Name, tdp, required, psu.Name, wattage), true
}

// requiredWattage maps GPU board power to the minimum PSU rating.
// Below 250W no constraint applies; unknown TDP resolves to 0 and never
// blocks a selection.
func requiredWattage(tdp float64) float64 {
	switch {
	case tdp >= 300:
		return 750
	case tdp >= 250:
		return 700
	}
	return 0
}
