package recommend

import (
	"math"

	"github.com/moonglae/pc-configurator/internal/catalog"
)

// priceHeadroom lets a pick exceed its category allocation by 15%; a
// slightly over-budget part beats an empty slot.
const priceHeadroom = 1.15

// lowBudgetCutoff switches allocation to the fixed low-budget split.
const lowBudgetCutoff = 700

// Request carries the target the user asked for.
type Request struct {
	Game         GameProfile
	Budget       BudgetRange
	CustomBudget float64
	Resolution   string
	TargetFPS    int
	Quality      QualityLevel
}

// Catalog is a snapshot of available components per category. The engine
// treats it as read-only and assumes each slice is already filtered to its
// category.
type Catalog map[catalog.Category][]catalog.Component

// Allocation is the per-category share of the effective budget, in money.
type Allocation struct {
	CPU         float64 `json:"cpu"`
	GPU         float64 `json:"gpu"`
	Motherboard float64 `json:"motherboard"`
	RAM         float64 `json:"ram"`
	PSU         float64 `json:"psu"`
}

// Fractions are the budget shares before multiplying by the budget.
type Fractions struct {
	CPU         float64
	GPU         float64
	Motherboard float64
	RAM         float64
	PSU         float64
}

// Sum returns the total share, 1.0 unless the 4K/Ultra shift applied.
func (f Fractions) Sum() float64 {
	return f.CPU + f.GPU + f.Motherboard + f.RAM + f.PSU
}

// Requirements are the minimum component scores for the requested target.
type Requirements struct {
	GPUScore float64 `json:"gpu_score"`
	CPUScore float64 `json:"cpu_score"`
}

// RecommendedBuild is the engine output. Any slot may be nil when nothing
// qualifies even under the relaxed budget-only pass; absence is a value,
// not an error.
type RecommendedBuild struct {
	Components   map[catalog.Category]*catalog.Component `json:"components"`
	Game         GameProfile                             `json:"game"`
	Requirements Requirements                            `json:"requirements"`
	Allocation   Allocation                              `json:"budget_allocation"`
	TotalPrice   float64                                 `json:"total_price"`
}

// EffectiveBudget is the custom value for the custom range, otherwise the
// range's upper bound.
func EffectiveBudget(budget BudgetRange, customValue float64) float64 {
	if budget.ID == customBudgetID {
		return customValue
	}
	return budget.Max
}

// ComputeRequirements scales the game's score floors by the display target.
func ComputeRequirements(game GameProfile, resolution string, targetFPS int, quality QualityLevel) Requirements {
	gpu := game.MinGPUScore *
		multiplier(resolutionMultipliers, resolution) *
		fpsMultiplier(fpsMultipliersGPU, targetFPS) *
		quality.ReqMultiplier
	cpu := game.MinCPUScore * fpsMultiplier(fpsMultipliersCPU, targetFPS)
	return Requirements{
		GPUScore: math.Ceil(gpu),
		CPUScore: math.Ceil(cpu),
	}
}

// AllocationFractions computes the per-category budget shares. Baseline
// sums to 1.0; the low-budget branch fixes the support categories and
// splits the remainder 40/60 CPU/GPU; a 4K or Ultra target then shifts
// 0.08 from CPU to GPU. The shift is not clamped, so a tiny budget plus a
// 4K/Ultra target can push the CPU share negative — that degrades to an
// empty CPU slot downstream rather than an error.
func AllocationFractions(effectiveBudget float64, resolution string, quality QualityLevel) Fractions {
	f := Fractions{CPU: 0.22, GPU: 0.38, Motherboard: 0.13, RAM: 0.12, PSU: 0.15}

	if effectiveBudget <= lowBudgetCutoff {
		f.Motherboard, f.RAM, f.PSU = 0.12, 0.10, 0.12
		remainder := 1 - (f.Motherboard + f.RAM + f.PSU)
		f.CPU = remainder * 0.4
		f.GPU = remainder * 0.6
	}

	if resolution == "4K" || quality.ID == "Ultra" {
		f.GPU += 0.08
		f.CPU -= 0.08
	}

	return f
}

// Allocate turns fractions into money amounts.
func Allocate(effectiveBudget float64, f Fractions) Allocation {
	return Allocation{
		CPU:         effectiveBudget * f.CPU,
		GPU:         effectiveBudget * f.GPU,
		Motherboard: effectiveBudget * f.Motherboard,
		RAM:         effectiveBudget * f.RAM,
		PSU:         effectiveBudget * f.PSU,
	}
}

// findBest searches a category twice: first with the score floor, then
// with budget alone. Highest score wins; ties keep the earliest catalog
// entry so results stay deterministic.
func findBest(items []catalog.Component, targetPrice, minScore float64, keep func(catalog.Component) bool) *catalog.Component {
	maxPrice := targetPrice * priceHeadroom

	pick := func(withScoreFloor bool) *catalog.Component {
		var best *catalog.Component
		for i := range items {
			item := &items[i]
			if item.Price > maxPrice {
				continue
			}
			if withScoreFloor && item.Specs.Score() < minScore {
				continue
			}
			if keep != nil && !keep(*item) {
				continue
			}
			if best == nil || item.Specs.Score() > best.Specs.Score() {
				best = item
			}
		}
		return best
	}

	if best := pick(true); best != nil {
		return best
	}
	return pick(false)
}

// Recommend selects the best-fit part per category. Selection order is
// fixed: CPU first, motherboard constrained to the CPU's socket, RAM
// constrained to the motherboard's memory generation, GPU independently,
// PSU last with no score floor. Deterministic for identical inputs and
// catalog contents.
func Recommend(req Request, snapshot Catalog) RecommendedBuild {
	effective := EffectiveBudget(req.Budget, req.CustomBudget)
	requirements := ComputeRequirements(req.Game, req.Resolution, req.TargetFPS, req.Quality)
	fractions := AllocationFractions(effective, req.Resolution, req.Quality)
	allocation := Allocate(effective, fractions)

	cpu := findBest(snapshot[catalog.CategoryCPU], allocation.CPU, requirements.CPUScore, nil)

	requiredSocket := ""
	if cpu != nil {
		requiredSocket = cpu.Specs.Socket()
	}
	board := findBest(snapshot[catalog.CategoryMotherboard], allocation.Motherboard, 0, func(item catalog.Component) bool {
		return requiredSocket == "" || item.Specs.Socket() == requiredSocket
	})

	ram := findBest(snapshot[catalog.CategoryRAM], allocation.RAM, 0, memoryFilter(board))
	gpu := findBest(snapshot[catalog.CategoryGPU], allocation.GPU, requirements.GPUScore, nil)
	psu := findBest(snapshot[catalog.CategoryPSU], allocation.PSU, 0, nil)

	components := map[catalog.Category]*catalog.Component{
		catalog.CategoryCPU:         cpu,
		catalog.CategoryMotherboard: board,
		catalog.CategoryRAM:         ram,
		catalog.CategoryGPU:         gpu,
		catalog.CategoryPSU:         psu,
	}

	total := 0.0
	for _, component := range components {
		if component != nil {
			total += component.Price
		}
	}

	return RecommendedBuild{
		Components:   components,
		Game:         req.Game,
		Requirements: requirements,
		Allocation:   allocation,
		TotalPrice:   total,
	}
}

// memoryFilter applies the checker's DDR-generation rule against the
// chosen motherboard, including the AM5-requires-DDR5 special case. A nil
// board leaves RAM unconstrained.
func memoryFilter(board *catalog.Component) func(catalog.Component) bool {
	if board == nil {
		return nil
	}
	boardGen := catalog.DetectDDR(catalog.ResolveMemoryType(*board))
	boardIsAM5 := board.Specs.Socket() == "AM5"

	return func(item catalog.Component) bool {
		ramGen := catalog.DetectDDR(catalog.ResolveMemoryType(item))
		if boardIsAM5 && ramGen == catalog.DDR4 {
			return false
		}
		if ramGen == catalog.DDRUnknown || boardGen == catalog.DDRUnknown {
			return true
		}
		return ramGen == boardGen
	}
}
