package domain

import "fmt"

// TraitRow es una fila renderizable: nombre, banda, puntaje y barra.
type TraitRow struct {
	Trait string  `json:"trait"`
	Score float64 `json:"score"`
	Level Level   `json:"level"`
}

// Width es el ancho relleno de la barra en porcentaje de la fila (score * 100).
func (r TraitRow) Width() float64 {
	return r.Score * 100
}

// ScoreText formatea el puntaje con dos decimales.
func (r TraitRow) ScoreText() string {
	return FormatScore(r.Score)
}

// DominantTrait es el rasgo con mayor puntaje de la respuesta.
type DominantTrait struct {
	Trait string  `json:"trait"`
	Score float64 `json:"score"`
}

func (d DominantTrait) String() string {
	return fmt.Sprintf("%s (%s)", d.Trait, FormatScore(d.Score))
}

// Report es el resultado listo para mostrar de una prediccion.
type Report struct {
	Rows     []TraitRow     `json:"rows"`
	Dominant *DominantTrait `json:"dominant,omitempty"`
	Profiles []string       `json:"profiles"`
}

// FormatScore formatea un puntaje con dos decimales.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// BuildReport recorre los rasgos en TraitOrder, omite los ausentes y elige el dominante
// con comparacion estricta: ante un empate gana el primero en el orden fijo.
func BuildReport(p Prediction) Report {
	report := Report{
		Rows:     make([]TraitRow, 0, len(TraitOrder)),
		Profiles: make([]string, 0, len(p.Profiles)),
	}

	dominantScore := -1.0
	for _, trait := range TraitOrder {
		score, ok := p.Score(trait)
		if !ok {
			continue
		}
		report.Rows = append(report.Rows, TraitRow{
			Trait: trait,
			Score: score,
			Level: Classify(score),
		})
		if score > dominantScore {
			dominantScore = score
			report.Dominant = &DominantTrait{Trait: trait, Score: score}
		}
	}

	report.Profiles = append(report.Profiles, p.Profiles...)
	return report
}
