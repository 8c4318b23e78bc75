package recommend

import (
	"math"

	"github.com/moonglae/pc-configurator/internal/catalog"
)

// GameFPS is the forecast frame rate for one title on the picked parts.
type GameFPS struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
	FPS    int    `json:"fps"`
}

const minForecastFPS = 10

// EstimateFPS predicts the frame rate a CPU/GPU pair reaches in a game at
// the given settings. GPU weight dominates (75/25); the game coefficient
// captures how demanding the engine is.
func EstimateFPS(cpu, gpu *catalog.Component, game GameProfile, quality QualityLevel, resolution string) int {
	if cpu == nil || gpu == nil {
		return 0
	}
	base := gpu.Specs.Score()*0.75 + cpu.Specs.Score()*0.25
	fps := math.Round(base * game.FPSCoeff * quality.FPSMultiplier * multiplier(forecastResolution, resolution))
	if fps < minForecastFPS {
		return minForecastFPS
	}
	return int(fps)
}

// ForecastAll estimates every known title for a recommended build, in the
// fixed game-catalog order. Returns nil when CPU or GPU is missing.
func ForecastAll(build RecommendedBuild, quality QualityLevel, resolution string) []GameFPS {
	cpu := build.Components[catalog.CategoryCPU]
	gpu := build.Components[catalog.CategoryGPU]
	if cpu == nil || gpu == nil {
		return nil
	}
	out := make([]GameFPS, 0, len(Games))
	for _, game := range Games {
		out = append(out, GameFPS{
			GameID: game.ID,
			Name:   game.Name,
			FPS:    EstimateFPS(cpu, gpu, game, quality, resolution),
		})
	}
	return out
}
