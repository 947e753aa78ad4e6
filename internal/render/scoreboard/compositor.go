// Package scoreboard arma la imagen de resultado de un match: duración, barras
// de equipo y la grilla de jugadores con los líderes resaltados.
package scoreboard

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/deadlock-match-bot/internal/domain"
)

// AssetLoader resuelve una referencia (URL o path) a una imagen decodificada.
// Lo implementa internal/infra/assets.Loader
type AssetLoader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

type Option func(*Compositor)

func WithLogger(l *zap.Logger) Option {
	return func(c *Compositor) { c.log = l }
}

// WithFetchLimit: cuántas imágenes se bajan en paralelo por render.
func WithFetchLimit(n int) Option {
	return func(c *Compositor) { c.fetchLimit = n }
}

// Compositor no guarda estado entre llamadas; se puede usar desde varias goroutines.
type Compositor struct {
	assets     AssetLoader
	log        *zap.Logger
	fetchLimit int
}

func New(assets AssetLoader, opts ...Option) *Compositor {
	c := &Compositor{assets: assets, log: zap.NewNop(), fetchLimit: 8}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Render devuelve el PNG 1920x1080 del match. Las fallas de assets se tragan;
// el único error posible sale del encoder.
func (c *Compositor) Render(ctx context.Context, m domain.MatchRenderModel) ([]byte, error) {
	a := c.prefetch(ctx, m)

	s, err := newSurface(CanvasWidth, CanvasHeight)
	if err != nil {
		return nil, err
	}
	defer s.close()

	s.fillRect(0, 0, CanvasWidth, CanvasHeight, background)
	drawDurationPill(s, m.Duration)

	drawTeamBar(s, teamBarX(SideLeft), barY, m.TeamA, Summarize(m.TeamA), a.ranks[SideLeft])
	drawTeamBar(s, teamBarX(SideRight), barY, m.TeamB, Summarize(m.TeamB), a.ranks[SideRight])

	lay := NewLayout(len(m.TeamA.Players), len(m.TeamB.Players))
	leaders := ComputeLeaders(m)

	drawStatLabels(s)
	drawColumns(s, lay, SideLeft, m.TeamA.Players, a.heroes[SideLeft], leaders)
	drawColumns(s, lay, SideRight, m.TeamB.Players, a.heroes[SideRight], leaders)

	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode scoreboard %s: %w", m.MatchID, err)
	}
	return buf.Bytes(), nil
}

type assetSet struct {
	heroes [2][]image.Image
	ranks  [2]image.Image
}

// prefetch baja héroes e iconos de rango en paralelo. Cada goroutine escribe
// en su propio slot; nadie toca el lienzo acá.
func (c *Compositor) prefetch(ctx context.Context, m domain.MatchRenderModel) assetSet {
	var a assetSet
	teams := [2]domain.TeamStats{m.TeamA, m.TeamB}

	var g errgroup.Group
	g.SetLimit(c.fetchLimit)

	load := func(ref string, dst *image.Image) {
		if ref == "" || c.assets == nil {
			return
		}
		g.Go(func() error {
			img, err := c.assets.Load(ctx, ref)
			if err != nil {
				c.log.Debug("asset skipped", zap.String("match_id", m.MatchID), zap.String("ref", ref), zap.Error(err))
				return nil
			}
			*dst = img
			return nil
		})
	}

	for side, t := range teams {
		a.heroes[side] = make([]image.Image, len(t.Players))
		load(t.RankIcon, &a.ranks[side])
		for i, p := range t.Players {
			load(p.HeroImage, &a.heroes[side][i])
		}
	}
	_ = g.Wait()
	return a
}
