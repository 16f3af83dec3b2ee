package domain

import "strings"

const (
	TraitOpenness          = "Openness"
	TraitConscientiousness = "Conscientiousness"
	TraitExtraversion      = "Extraversion"
	TraitAgreeableness     = "Agreeableness"
	TraitNeuroticism       = "Neuroticism"
)

// TraitOrder es el orden fijo de presentacion. Tambien decide los empates del rasgo dominante.
var TraitOrder = []string{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// Level es la banda cualitativa de un puntaje.
type Level string

const (
	LevelHigh     Level = "High"
	LevelModerate Level = "Moderate"
	LevelLow      Level = "Low"
)

// Umbrales fijos compartidos por la etiqueta y el estilo visual.
const (
	HighThreshold     = 0.65
	ModerateThreshold = 0.35
)

// Classify ubica un puntaje en su banda: [0.65, ∞) High, [0.35, 0.65) Moderate, resto Low.
func Classify(score float64) Level {
	if score >= HighThreshold {
		return LevelHigh
	}
	if score >= ModerateThreshold {
		return LevelModerate
	}
	return LevelLow
}

// Class devuelve la clase de estilo (high, moderate, low).
func (l Level) Class() string {
	return strings.ToLower(string(l))
}

func (l Level) String() string {
	return string(l)
}
