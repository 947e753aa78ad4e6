package service

import (
	"context"
	"fmt"
)

// ScoreboardService: assemble + render. Lo usan /scoreboard, el preview HTTP y el notifier.
type ScoreboardService struct {
	assembler *MatchAssembler
	renderer  Renderer
}

func NewScoreboardService(a *MatchAssembler, r Renderer) *ScoreboardService {
	return &ScoreboardService{assembler: a, renderer: r}
}

func (s *ScoreboardService) Render(ctx context.Context, matchID int64) ([]byte, error) {
	m, err := s.assembler.Assemble(ctx, matchID)
	if err != nil {
		return nil, err
	}
	png, err := s.renderer.Render(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("render match %d: %w", matchID, err)
	}
	return png, nil
}
