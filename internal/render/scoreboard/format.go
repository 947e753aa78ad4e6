package scoreboard

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// formatThousands: 12345 -> "12,345". Se usa en las celdas de la tabla.
func formatThousands(v int) string {
	return numberPrinter.Sprintf("%d", v)
}

// formatSummary es el formato de la barra de equipo: souls siempre lleva K
// (ya viene en miles), el resto se abrevia recién desde 1000.
func formatSummary(v int, souls bool) string {
	if souls {
		return strconv.Itoa(v) + "K"
	}
	if v >= 1000 {
		return strconv.Itoa(v/1000) + "K"
	}
	return strconv.Itoa(v)
}

// fitFontSize baja de a 2 desde 20 hasta que el texto entra o llega a 16.
func fitFontSize(measure func(size float64) float64, maxWidth float64) float64 {
	size := nicknameMaxSize
	for measure(size) > maxWidth && size > nicknameMinSize {
		size -= nicknameStep
	}
	return size
}

const (
	nicknameMaxSize = 20.0
	nicknameMinSize = 16.0
	nicknameStep    = 2.0
)

// fitWithin escala (w, h) para que el lado largo sea box, manteniendo aspecto.
func fitWithin(w, h int, box float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	aspect := float64(w) / float64(h)
	if aspect > 1 {
		return box, box / aspect
	}
	return box * aspect, box
}
