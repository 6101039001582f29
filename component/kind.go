package component

// Kind discriminates the closed set of body variants
type Kind uint8

const (
	KindStar Kind = iota
	KindPlanet
	KindBlackHole
	KindQuasar
	KindPulsar

	// KindAttractor is the transient pointer gravity well, never registered
	KindAttractor
)

var kindNames = [...]string{
	KindStar:      "Star",
	KindPlanet:    "Planet",
	KindBlackHole: "BlackHole",
	KindQuasar:    "Quasar",
	KindPulsar:    "Pulsar",
	KindAttractor: "Attractor",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsBlackHoleClass reports black holes and quasars, which consume bodies and pull particles
func (k Kind) IsBlackHoleClass() bool {
	return k == KindBlackHole || k == KindQuasar
}

// IsEmitter reports kinds that emit jet particles every tick
func (k Kind) IsEmitter() bool {
	return k == KindPulsar || k == KindQuasar
}
