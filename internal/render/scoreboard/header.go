package scoreboard

import (
	"image"

	"github.com/jose-valero/deadlock-match-bot/internal/domain"
)

const (
	pillY      = 80.0
	pillHeight = 56.0
	pillRadius = 14.0
	pillWidth  = 96.0 + 2*pillRadius

	barY      = 160.0
	barWidth  = 700.0
	barHeight = 80.0
	barInset  = 40.0 // distancia al borde del canvas

	accentWidth  = 6.0
	rankIconSize = 54.0
	barPadding   = 24.0
	nameGap      = 18.0 // icono -> nombre
	statsGap     = 64.0 // fin del nombre -> primer número
	statSpacing  = 80.0
)

func drawDurationPill(s *surface, duration string) {
	cx := CanvasWidth / 2.0
	s.fillRoundedRect(cx-pillWidth/2, pillY, pillWidth, pillHeight, pillRadius, withAlpha(panel, 0.95))
	s.text(duration, cx, pillY+pillHeight/2, 0.5, 0.5, 28, true, white)
}

// teamBarX: la barra izquierda pegada al margen, la derecha espejada.
func teamBarX(side Side) float64 {
	if side == SideLeft {
		return barInset
	}
	return CanvasWidth - barInset - barWidth
}

// drawTeamBar dibuja panel, franja de acento, icono de rango (si hay), nombre,
// VICTORY/DEFEAT y los tres totales. rankIcon nil = no se dibuja.
func drawTeamBar(s *surface, x, y float64, team domain.TeamStats, sum TeamSummary, rankIcon image.Image) {
	accent := hex(team.Color, white)

	s.fillRect(x, y, barWidth, barHeight, withAlpha(panel, 0.98))
	s.fillRect(x, y, accentWidth, barHeight, accent)

	if rankIcon != nil {
		s.drawImageScaled(rankIcon, x+accentWidth+barPadding, y+(barHeight-rankIconSize)/2, rankIconSize, rankIconSize)
	}

	nameX := x + accentWidth + barPadding + rankIconSize + nameGap
	s.text(team.Name, nameX, y+12, 0, 1, 28, true, accent)
	nameWidth := s.measure(team.Name, 28, true)

	result, resultColor := "DEFEAT", dimText
	if team.Victory {
		result, resultColor = "VICTORY", victoryTxt
	}
	s.text(result, nameX, y+46, 0, 1, 22, true, resultColor)

	statX := nameX + nameWidth + statsGap
	statY := y + 18
	items := []struct {
		value int
		label string
		souls bool
	}{
		{sum.Kills, "KILLS", false},
		{sum.Souls, "SOULS", true},
		{sum.Damage, "DAMAGE", false},
	}
	for i, it := range items {
		sx := statX + float64(i)*statSpacing
		s.text(formatSummary(it.value, it.souls), sx, statY, 0.5, 1, 24, true, white)
		s.text(it.label, sx, statY+38, 0.5, 1, 16, true, dimText)
	}
}
