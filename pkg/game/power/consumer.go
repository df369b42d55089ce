package power

import (
	"github.com/tanema/gween"
)

// Emitter is the light-like handle a consumer controls. The renderer owns
// the concrete emitter; the simulation only reads and writes intensity.
type Emitter interface {
	Intensity() float64
	SetIntensity(v float64)
}

// ConsumerKind distinguishes the flashlight from ambient lights. The two
// kinds differ in what "active" means and in who owns intensity while
// power is healthy.
type ConsumerKind int

// Consumer kinds.
const (
	KindFlashlight ConsumerKind = iota
	KindAmbient
)

// Consumer is one registered drain on the power pool.
type Consumer struct {
	ID      string
	Emitter Emitter
	Kind    ConsumerKind

	// BaseIntensity is the emitter intensity captured at registration;
	// dim/flicker/restore are computed against it.
	BaseIntensity float64

	// Rate is consumption in units/sec. For the flashlight this is pushed
	// externally (0 while off) and doubles as the active signal.
	Rate float64

	// Priority (1-5) offsets the flicker phase so lights do not flicker
	// in lockstep. It has no effect on shutoff ordering.
	Priority int

	// Surge bookkeeping: a decaying boost applied after a charge pickup.
	surge       *gween.Tween
	surgeAmount float64
}

// active reports whether the consumer currently drains the pool. The
// flashlight is active iff its pushed rate is positive, decoupling drain
// from its visual intensity; other consumers are active while they emit
// anything above floating-point noise.
func (c *Consumer) active() bool {
	if c.Kind == KindFlashlight {
		return c.Rate > 0
	}
	return c.Emitter.Intensity() > 0.001
}
