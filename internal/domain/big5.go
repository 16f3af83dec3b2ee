package domain

// Big5Scores agrupa los cinco puntajes (0.0 - 1.0) de una prediccion.
type Big5Scores struct {
	Openness          float64 `json:"openness"`          // Creatividad vs. Pragmatismo
	Conscientiousness float64 `json:"conscientiousness"` // Orden vs. Caos
	Extraversion      float64 `json:"extraversion"`      // Energia social
	Agreeableness     float64 `json:"agreeableness"`     // Amabilidad
	Neuroticism       float64 `json:"neuroticism"`       // Estabilidad emocional
}

// Map devuelve los puntajes indexados por nombre de rasgo, como viajan en "scores".
func (b Big5Scores) Map() map[string]float64 {
	return map[string]float64{
		TraitOpenness:          b.Openness,
		TraitConscientiousness: b.Conscientiousness,
		TraitExtraversion:      b.Extraversion,
		TraitAgreeableness:     b.Agreeableness,
		TraitNeuroticism:       b.Neuroticism,
	}
}

func (b Big5Scores) all(pred func(float64) bool) bool {
	for _, v := range []float64{b.Agreeableness, b.Openness, b.Conscientiousness, b.Extraversion, b.Neuroticism} {
		if !pred(v) {
			return false
		}
	}
	return true
}

const BalancedProfile = "Balanced personality with no extreme trait combinations"

// ProfileRules traduce combinaciones de bandas extremas en frases de perfil.
// El orden de las reglas es el orden de salida. Sin coincidencias devuelve BalancedProfile.
func (b Big5Scores) ProfileRules() []string {
	high := func(v float64) bool { return v >= HighThreshold }
	low := func(v float64) bool { return v < ModerateThreshold }

	O, C, E, A, N := b.Openness, b.Conscientiousness, b.Extraversion, b.Agreeableness, b.Neuroticism

	rules := []struct {
		match   bool
		profile string
	}{
		{high(N) && high(A), "Emotionally sensitive with strong interpersonal concern"},
		{high(N) && low(E), "Prone to anxiety with introverted tendencies"},
		{high(N) && low(C), "Emotionally reactive with difficulty maintaining structure"},
		{high(O) && low(C), "Highly creative but may struggle with organization"},
		{high(O) && high(C), "Intellectually curious with strong follow-through"},
		{low(O) && high(C), "Conventional and highly disciplined"},
		{high(C) && low(N), "Goal-oriented with emotional stability"},
		{high(C) && high(E), "Ambitious and socially engaged achiever"},
		{high(E) && high(A), "Warm and sociable with collaborative tendencies"},
		{high(E) && low(A), "Assertive and socially dominant"},
		{low(E) && high(A), "Reserved but cooperative and considerate"},
		{low(N) && high(E), "Emotionally resilient and outgoing"},
		{b.all(high), "High across all dimensions (rare profile)"},
		{b.all(low), "Low across all dimensions (rare profile)"},
	}

	var profiles []string
	for _, r := range rules {
		if r.match {
			profiles = append(profiles, r.profile)
		}
	}
	if len(profiles) == 0 {
		profiles = append(profiles, BalancedProfile)
	}
	return profiles
}
