package scoreboard

// Geometría fija del template (1920x1080).
const (
	CanvasWidth  = 1920
	CanvasHeight = 1080

	edgeGap   = 30.0 // borde del canvas -> primera columna
	playerGap = 15.0 // entre columnas

	tableTop    = 320.0
	heroSize    = 110.0
	tableOffset = 38.0 // aire entre nickname y la tabla
	cellHeight  = 60.0
	nicknameY   = tableTop + heroSize + 24
)

type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Layout: ancho de columna compartido por los dos equipos y arranque de cada bloque.
type Layout struct {
	ColumnWidth float64
	LeftStart   float64
	RightStart  float64
	players     [2]int
}

// NewLayout asume left, right >= 1. Con rosters absurdos el ancho puede quedar <= 0;
// no lo cortamos, se dibuja lo que salga.
func NewLayout(left, right int) Layout {
	total := float64(left + right)
	w := (CanvasWidth-playerGap*(total-1))/total - 30
	rs := float64(right)
	return Layout{
		ColumnWidth: w,
		LeftStart:   edgeGap,
		RightStart:  CanvasWidth - edgeGap - rs*w - (rs-1)*playerGap,
		players:     [2]int{left, right},
	}
}

func (l Layout) Players(side Side) int { return l.players[side] }

// ColumnX devuelve el x izquierdo de la columna i del lado dado.
func (l Layout) ColumnX(side Side, i int) float64 {
	start := l.LeftStart
	if side == SideRight {
		start = l.RightStart
	}
	return start + float64(i)*(l.ColumnWidth+playerGap)
}

// LeftBlockEnd: borde derecho de la última columna del equipo izquierdo.
func (l Layout) LeftBlockEnd() float64 {
	return l.ColumnX(SideLeft, l.players[SideLeft]-1) + l.ColumnWidth
}

// RowTop es el y superior de la fila de stats i; igual para todas las columnas.
func RowTop(i int) float64 {
	return tableTop + heroSize + tableOffset + float64(i)*cellHeight + 8
}
