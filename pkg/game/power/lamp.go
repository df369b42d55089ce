package power

// Lamp is a minimal Emitter implementation: a bare intensity scalar.
// The game state owns one per light source; renderers read it to scale
// brightness, and the simulation writes it during dim/flicker/blackout.
type Lamp struct {
	intensity float64
}

// NewLamp creates a lamp at the given intensity.
func NewLamp(intensity float64) *Lamp {
	return &Lamp{intensity: intensity}
}

// Intensity returns the current intensity.
func (l *Lamp) Intensity() float64 {
	return l.intensity
}

// SetIntensity sets the current intensity.
func (l *Lamp) SetIntensity(v float64) {
	l.intensity = v
}
