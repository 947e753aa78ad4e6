package scoreboard

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontsOnce   sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	fontsErr    error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regularFont, fontsErr = truetype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		boldFont, fontsErr = truetype.Parse(gobold.TTF)
	})
	return fontsErr
}

type faceKey struct {
	size float64
	bold bool
}

// surface es el lienzo de UN render. No es seguro entre goroutines: todo el
// dibujo sale de un solo lugar (Compositor.Render).
type surface struct {
	dc    *gg.Context
	faces map[faceKey]font.Face
}

func newSurface(w, h int) (*surface, error) {
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("parse fonts: %w", err)
	}
	return &surface{dc: gg.NewContext(w, h), faces: map[faceKey]font.Face{}}, nil
}

func (s *surface) setFont(size float64, bold bool) {
	k := faceKey{size, bold}
	f, ok := s.faces[k]
	if !ok {
		ttf := regularFont
		if bold {
			ttf = boldFont
		}
		f = truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72})
		s.faces[k] = f
	}
	s.dc.SetFontFace(f)
}

func (s *surface) close() {
	for _, f := range s.faces {
		_ = f.Close()
	}
}

func (s *surface) measure(text string, size float64, bold bool) float64 {
	s.setFont(size, bold)
	w, _ := s.dc.MeasureString(text)
	return w
}

func (s *surface) fillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *surface) fillRoundedRect(x, y, w, h, r float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRoundedRectangle(x, y, w, h, r)
	s.dc.Fill()
}

// fadeLeft pinta un gradiente de derecha (c con alpha) a izquierda (transparente).
func (s *surface) fadeLeft(x, y, w, h float64, c color.NRGBA) {
	transparent := c
	transparent.A = 0
	g := gg.NewLinearGradient(x+w, 0, x, 0)
	g.AddColorStop(0, c)
	g.AddColorStop(1, transparent)
	s.dc.SetFillStyle(g)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// text dibuja con anclas al estilo gg: ax 0=izq 0.5=centro, ay 0.5=medio 1=arriba.
func (s *surface) text(str string, x, y, ax, ay, size float64, bold bool, c color.Color) {
	s.setFont(size, bold)
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, x, y, ax, ay)
}

// drawImageScaled redimensiona img a (w, h) y la pega en (x, y).
func (s *surface) drawImageScaled(img image.Image, x, y, w, h float64) {
	iw, ih := int(math.Round(w)), int(math.Round(h))
	if iw < 1 || ih < 1 {
		return
	}
	scaled := imaging.Resize(img, iw, ih, imaging.Lanczos)
	s.dc.DrawImage(scaled, int(math.Round(x)), int(math.Round(y)))
}

// hex parsea colores del template; si viene basura cae en fallback.
func hex(h string, fallback color.NRGBA) color.NRGBA {
	c, err := colorful.Hex(h)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(a * 255))
	return c
}

var (
	white      = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	background = hex("#161c2a", white)
	panel      = hex("#181818", white)
	dimText    = hex("#c2c2c2", white)
	victoryTxt = hex("#ffe7c2", white)
)
