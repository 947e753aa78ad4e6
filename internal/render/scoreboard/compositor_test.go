package scoreboard

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssets sirve imágenes sólidas por referencia y registra lo pedido.
type fakeAssets struct {
	mu     sync.Mutex
	images map[string]image.Image
	asked  []string
}

func (f *fakeAssets) Load(_ context.Context, ref string) (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.asked = append(f.asked, ref)
	if img, ok := f.images[ref]; ok {
		return img, nil
	}
	return nil, errors.New("not found")
}

func solid(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func decode(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func rgbAt(img image.Image, x, y float64) color.NRGBA {
	c := color.NRGBAModel.Convert(img.At(int(x), int(y))).(color.NRGBA)
	c.A = 0xff
	return c
}

func TestRender_ProducesFixedCanvas(t *testing.T) {
	t.Parallel()

	out, err := New(&fakeAssets{}).Render(context.Background(), sixVsSix())
	require.NoError(t, err)

	img := decode(t, out)
	assert.Equal(t, CanvasWidth, img.Bounds().Dx())
	assert.Equal(t, CanvasHeight, img.Bounds().Dy())
	assert.Equal(t, background, rgbAt(img, 5, 5))
}

func TestRender_IsDeterministic(t *testing.T) {
	t.Parallel()

	m := sixVsSix()
	m.TeamA.Players[0].HeroImage = "hero-wide"
	m.TeamB.Players[3].HeroImage = "hero-tall"
	m.TeamA.RankIcon = "rank"
	assets := &fakeAssets{images: map[string]image.Image{
		"hero-wide": solid(200, 100, color.NRGBA{200, 10, 10, 255}),
		"hero-tall": solid(80, 160, color.NRGBA{10, 200, 10, 255}),
		"rank":      solid(64, 64, color.NRGBA{10, 10, 200, 255}),
	}}
	c := New(assets)

	first, err := c.Render(context.Background(), m)
	require.NoError(t, err)
	second, err := c.Render(context.Background(), m)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestRender_When_HeroImageEmpty(t *testing.T) {
	t.Parallel()

	m := sixVsSix()
	m.TeamA.Players[1].HeroImage = "hero"
	assets := &fakeAssets{images: map[string]image.Image{
		"hero": solid(64, 64, color.NRGBA{250, 0, 0, 255}),
	}}

	out, err := New(assets).Render(context.Background(), m)
	require.NoError(t, err)
	img := decode(t, out)

	assert.Equal(t, []string{"hero"}, assets.asked)

	lay := NewLayout(6, 6)
	blank := lay.ColumnX(SideLeft, 0) + lay.ColumnWidth/2
	drawn := lay.ColumnX(SideLeft, 1) + lay.ColumnWidth/2
	assert.Equal(t, background, rgbAt(img, blank, tableTop+heroSize/2))
	assert.Equal(t, color.NRGBA{250, 0, 0, 255}, rgbAt(img, drawn, tableTop+heroSize/2))
}

func TestRender_When_AssetsFail(t *testing.T) {
	t.Parallel()

	m := sixVsSix()
	m.TeamA.RankIcon = "https://example.invalid/rank.png"
	m.TeamB.Players[0].HeroImage = "https://example.invalid/hero.webp"

	out, err := New(&fakeAssets{}).Render(context.Background(), m)
	require.NoError(t, err)

	img := decode(t, out)
	lay := NewLayout(6, 6)
	assert.Equal(t, background, rgbAt(img, lay.ColumnX(SideRight, 0)+lay.ColumnWidth/2, tableTop+heroSize/2))
}

// probe toma un pixel pegado al borde derecho de la celda, lejos del número.
func probe(img image.Image, lay Layout, side Side, col, row int) color.NRGBA {
	x := lay.ColumnX(side, col) + lay.ColumnWidth - 3
	return rgbAt(img, x, RowTop(row)+5)
}

func TestRender_HighlightsOnlyUniqueKillsLeader(t *testing.T) {
	t.Parallel()

	m := sixVsSix()
	m.TeamA.Players[2].Kills = 50

	out, err := New(&fakeAssets{}).Render(context.Background(), m)
	require.NoError(t, err)
	img := decode(t, out)
	lay := NewLayout(6, 6)
	row := int(StatKills)

	for i := 0; i < 6; i++ {
		got := probe(img, lay, SideLeft, i, row)
		if i == 2 {
			assert.NotEqual(t, cellColor(SideLeft, row), got, "leader cell")
			continue
		}
		assert.Equal(t, cellColor(SideLeft, row), got, "team A col %d", i)
		assert.Equal(t, cellColor(SideRight, row), probe(img, lay, SideRight, i, row), "team B col %d", i)
	}
}

func TestRender_NeverHighlightsDeaths(t *testing.T) {
	t.Parallel()

	m := sixVsSix()
	for i := range m.TeamA.Players {
		m.TeamA.Players[i].Deaths = 0
		m.TeamB.Players[i].Deaths = 0
	}

	out, err := New(&fakeAssets{}).Render(context.Background(), m)
	require.NoError(t, err)
	img := decode(t, out)
	lay := NewLayout(6, 6)
	row := int(StatDeaths)

	for i := 0; i < 6; i++ {
		assert.Equal(t, cellColor(SideLeft, row), probe(img, lay, SideLeft, i, row))
		assert.Equal(t, cellColor(SideRight, row), probe(img, lay, SideRight, i, row))
	}
	// en cambio, souls empatado en todos: todos resaltados
	for i := 0; i < 6; i++ {
		assert.NotEqual(t, cellColor(SideLeft, 0), probe(img, lay, SideLeft, i, 0))
	}
}

func TestRender_When_UnevenRosters(t *testing.T) {
	t.Parallel()

	m := sixVsSix()
	m.TeamA.Players = m.TeamA.Players[:1]
	m.TeamB.Players = m.TeamB.Players[:4]
	m.TeamA.Players[0].Nickname = "a_very_long_nickname_that_does_not_fit_anywhere"

	out, err := New(nil).Render(context.Background(), m)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
