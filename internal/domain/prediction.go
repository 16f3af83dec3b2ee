package domain

// PredictRequest es el cuerpo enviado a POST /predict.
type PredictRequest struct {
	Text string `json:"text"`
}

// Prediction es la respuesta del servicio de prediccion.
// Ambos campos son opcionales: si faltan se tratan como vacios.
type Prediction struct {
	Scores   map[string]float64 `json:"scores"`
	Profiles []string           `json:"profiles"`
}

// Score devuelve el puntaje de un rasgo y si vino en la respuesta.
func (p Prediction) Score(trait string) (float64, bool) {
	if p.Scores == nil {
		return 0, false
	}
	v, ok := p.Scores[trait]
	return v, ok
}
