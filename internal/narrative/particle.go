package narrative

// ParticleKind names a Korean particle pair whose choice depends on
// whether the preceding syllable ends in a final consonant.
type ParticleKind int

const (
	// TopicParticle selects 은/는.
	TopicParticle ParticleKind = iota
	// SubjectParticle selects 이/가.
	SubjectParticle
	// ObjectParticle selects 을/를.
	ObjectParticle
	// ConjunctionParticle selects 과/와.
	ConjunctionParticle
	// DirectionParticle selects 으로/로, with the ㄹ-final exception.
	DirectionParticle
)

// hangulBase is the first precomposed Hangul syllable (가).
const (
	hangulBase rune = 0xAC00
	hangulLast rune = 0xD7A3
)

// Particle returns the correct particle for word. Non-Hangul final
// characters (digits, Latin) are treated as open syllables; an empty
// word yields an empty particle.
func Particle(word string, kind ParticleKind) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return ""
	}

	last := runes[len(runes)-1]
	jongseong := 0
	if last >= hangulBase && last <= hangulLast {
		jongseong = int(last-hangulBase) % 28
	}
	closed := jongseong > 0

	switch kind {
	case TopicParticle:
		if closed {
			return "은"
		}
		return "는"
	case SubjectParticle:
		if closed {
			return "이"
		}
		return "가"
	case ObjectParticle:
		if closed {
			return "을"
		}
		return "를"
	case ConjunctionParticle:
		if closed {
			return "과"
		}
		return "와"
	case DirectionParticle:
		// A ㄹ final joins 로 directly, like an open syllable.
		if closed && jongseong != 8 {
			return "으로"
		}
		return "로"
	default:
		return ""
	}
}

// WithParticle appends the chosen particle to word.
func WithParticle(word string, kind ParticleKind) string {
	return word + Particle(word, kind)
}
