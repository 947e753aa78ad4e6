package scoreboard

import (
	"image"
	"image/color"

	"github.com/jose-valero/deadlock-match-bot/internal/domain"
)

const highlightAlpha = 0.85

// paleta de celdas por lado: [par, impar]
var cellShades = [2][2]color.NRGBA{
	SideLeft:  {hex("#283562", white), hex("#1f2b51", white)},
	SideRight: {hex("#4c3d1f", white), hex("#3f331b", white)},
}

func cellColor(side Side, row int) color.NRGBA {
	return cellShades[side][row%2]
}

// drawStatLabels pone el nombre de cada fila en el centro del canvas.
func drawStatLabels(s *surface) {
	for i, row := range statRows {
		s.text(row.Label, CanvasWidth/2.0, RowTop(i)+cellHeight/2, 0.5, 0.5, 24, true, dimText)
	}
}

// drawColumns dibuja héroe, nick y tabla para cada jugador de un lado.
// heroes[i] nil = no hay imagen (ref vacía o falló la carga).
func drawColumns(s *surface, lay Layout, side Side, players []domain.PlayerStats, heroes []image.Image, leaders Leaders) {
	for i, p := range players {
		x := lay.ColumnX(side, i)
		var hero image.Image
		if i < len(heroes) {
			hero = heroes[i]
		}
		drawHero(s, x, lay.ColumnWidth, hero)
		drawNickname(s, x, lay.ColumnWidth, p.Nickname)
		drawStatCells(s, x, lay.ColumnWidth, side, p, leaders)
	}
}

func drawHero(s *surface, x, colWidth float64, img image.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := fitWithin(b.Dx(), b.Dy(), heroSize)
	s.drawImageScaled(img, x+(colWidth-w)/2, tableTop+(heroSize-h)/2, w, h)
}

func drawNickname(s *surface, x, colWidth float64, nick string) {
	size := fitFontSize(func(size float64) float64 { return s.measure(nick, size, true) }, colWidth)
	s.text(nick, x+colWidth/2, nicknameY, 0.5, 0.5, size, true, white)
}

func drawStatCells(s *surface, x, colWidth float64, side Side, p domain.PlayerStats, leaders Leaders) {
	for i, row := range statRows {
		y := RowTop(i)
		v := row.Stat.Value(p)
		s.fillRect(x, y, colWidth, cellHeight, cellColor(side, i))

		lead := leaders.IsLeader(row.Stat, v)
		if lead {
			s.fadeLeft(x, y, colWidth, cellHeight, withAlpha(hex(row.Highlight, white), highlightAlpha))
		}

		txt := dimText
		if lead {
			txt = white
		}
		s.text(formatThousands(v), x+colWidth/2, y+cellHeight/2, 0.5, 0.5, 24, lead, txt)
	}
}
