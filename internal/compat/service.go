package compat

import (
	"context"
	"fmt"

	"github.com/moonglae/pc-configurator/internal/catalog"
)

// ValidationResult is the verdict for a whole build. An empty message list
// with IsValid true means "all nominal"; the friendly phrasing of that case
// belongs to the caller.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Messages []string `json:"messages"`
}

type Service struct {
	Repo catalog.Repo
}

func NewService(repo catalog.Repo) *Service {
	return &Service{Repo: repo}
}

// ValidateBuild loads the referenced components and replays them into a
// build in fixed category order, running each through the checker against
// the partial build. Replaying in one order yields exactly one message per
// conflicting pair while preserving rule precedence.
func (s *Service) ValidateBuild(ctx context.Context, componentIDs []int64) (ValidationResult, error) {
	result := ValidationResult{IsValid: true, Messages: []string{}}

	components, err := s.Repo.GetByIDs(ctx, componentIDs)
	if err != nil {
		return result, fmt.Errorf("load components: %w", err)
	}

	byCategory := make(map[catalog.Category][]catalog.Component)
	for _, component := range components {
		byCategory[component.Category] = append(byCategory[component.Category], component)
	}

	build := NewBuild()
	for _, category := range catalog.Categories {
		for i := range byCategory[category] {
			candidate := byCategory[category][i]
			if reason := Check(category, candidate, build); reason != "" {
				result.IsValid = false
				result.Messages = append(result.Messages, reason)
			}
			build[category] = &byCategory[category][i]
		}
	}

	return result, nil
}
