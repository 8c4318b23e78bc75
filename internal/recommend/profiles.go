package recommend

// GameProfile describes the performance floor of a supported title.
// MinGPUScore/MinCPUScore are the ratings needed for 1080p/60/High; the
// engine scales them by resolution, FPS target and quality. FPSCoeff feeds
// the post-selection FPS forecast.
type GameProfile struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MinGPUScore float64 `json:"min_gpu_score"`
	MinCPUScore float64 `json:"min_cpu_score"`
	Category    string  `json:"category"`
	FPSCoeff    float64 `json:"-"`
}

// Games is the fixed profile catalog.
var Games = []GameProfile{
	{ID: "cs2", Name: "CS 2", MinGPUScore: 20, MinCPUScore: 40, Category: "esports", FPSCoeff: 2.5},
	{ID: "valorant", Name: "VALORANT", MinGPUScore: 15, MinCPUScore: 35, Category: "esports", FPSCoeff: 2.8},
	{ID: "dota2", Name: "Dota 2", MinGPUScore: 25, MinCPUScore: 40, Category: "strategy", FPSCoeff: 2.2},
	{ID: "gta5", Name: "GTA V", MinGPUScore: 45, MinCPUScore: 45, Category: "openworld", FPSCoeff: 1.8},
	{ID: "cyberpunk", Name: "Cyberpunk 2077", MinGPUScore: 75, MinCPUScore: 65, Category: "aaa", FPSCoeff: 0.6},
	{ID: "elden_ring", Name: "Elden Ring", MinGPUScore: 60, MinCPUScore: 55, Category: "action", FPSCoeff: 1.1},
}

// GameByID looks up a profile; ok is false for unknown IDs.
func GameByID(id string) (GameProfile, bool) {
	for _, game := range Games {
		if game.ID == id {
			return game, true
		}
	}
	return GameProfile{}, false
}

// BudgetRange is a named spending bracket. The custom range has no fixed
// upper bound; the caller supplies one per request.
type BudgetRange struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

const customBudgetID = "custom"

var BudgetRanges = []BudgetRange{
	{ID: "budget", Name: "Budget (under $500)", Min: 0, Max: 500},
	{ID: "mid", Name: "Mid-range ($500-$1000)", Min: 500, Max: 1000},
	{ID: "high", Name: "Premium ($1000-$2000)", Min: 1000, Max: 2000},
	{ID: "ultra", Name: "Ultra ($2000+)", Min: 2000, Max: 5000},
	{ID: customBudgetID, Name: "Custom", Min: 0, Max: 0},
}

func BudgetByID(id string) (BudgetRange, bool) {
	for _, budget := range BudgetRanges {
		if budget.ID == id {
			return budget, true
		}
	}
	return BudgetRange{}, false
}

// QualityLevel scales the GPU requirement up (ReqMultiplier) and the FPS
// forecast down (FPSMultiplier) as settings rise.
type QualityLevel struct {
	ID            string
	Label         string
	ReqMultiplier float64
	FPSMultiplier float64
	Color         string
}

var QualityLevels = []QualityLevel{
	{ID: "Low", Label: "Low", ReqMultiplier: 0.6, FPSMultiplier: 1.6, Color: "#4caf50"},
	{ID: "Medium", Label: "Medium", ReqMultiplier: 0.8, FPSMultiplier: 1.2, Color: "#2196f3"},
	{ID: "High", Label: "High", ReqMultiplier: 1.0, FPSMultiplier: 1.0, Color: "#ff9800"},
	{ID: "Ultra", Label: "Ultra", ReqMultiplier: 1.3, FPSMultiplier: 0.7, Color: "#d50000"},
}

func QualityByID(id string) (QualityLevel, bool) {
	for _, quality := range QualityLevels {
		if quality.ID == id {
			return quality, true
		}
	}
	return QualityLevel{}, false
}

// Requirement multipliers. The CPU requirement deliberately ignores
// resolution and quality: the CPU bottleneck model is FPS-driven only.
var (
	resolutionMultipliers = map[string]float64{"1080p": 1.0, "1440p": 1.4, "4K": 2.2}
	fpsMultipliersGPU     = map[int]float64{60: 1.0, 120: 1.3, 144: 1.5}
	fpsMultipliersCPU     = map[int]float64{60: 1.0, 120: 1.4, 144: 1.6}

	// FPS forecast scales the other way: higher resolution costs frames.
	forecastResolution = map[string]float64{"1080p": 1.0, "1440p": 0.70, "4K": 0.45}
)

func multiplier(table map[string]float64, key string) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return 1.0
}

func fpsMultiplier(table map[int]float64, key int) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return 1.0
}
