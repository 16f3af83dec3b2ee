package service

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"strings"

	"big5-analyzer/internal/domain"
)

// StubScores deriva puntajes deterministas del hash del texto. Solo sirve para el stub de desarrollo:
// no infiere personalidad, garantiza que el mismo texto produzca siempre la misma respuesta.
func StubScores(text string) domain.Big5Scores {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(text))))
	score := func(i int) float64 {
		v := float64(binary.BigEndian.Uint16(sum[i*2:i*2+2])) / math.MaxUint16
		return math.Round(v*10000) / 10000
	}
	return domain.Big5Scores{
		Openness:          score(0),
		Conscientiousness: score(1),
		Extraversion:      score(2),
		Agreeableness:     score(3),
		Neuroticism:       score(4),
	}
}
