package power

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/levelgen"
)

// Surge visual tuning: duration of the post-pickup boost and its caps.
const (
	surgeDuration     = 0.5
	surgeBaseCap      = 1.5
	surgePreSurgeCap  = 2.0
	flickerBaseFactor = 0.3
)

// Stats is a read-only snapshot for the HUD.
type Stats struct {
	Current    float64
	Max        float64
	Rate       float64
	ETASeconds float64
}

// Simulation owns the power pool scalar and the registered consumers.
// All methods must be called from the single game-loop goroutine; the
// per-tick update is O(consumers), which stays in single digits.
type Simulation struct {
	cfg config.PowerConfig

	current float64
	max     float64

	consumers map[string]*Consumer

	// elapsed is accumulated simulation time, fed by Tick. Flicker phase
	// is a pure function of it, so tests can drive it deterministically.
	elapsed float64

	state State
}

// NewSimulation creates a simulation with a full pool.
func NewSimulation(cfg config.PowerConfig) *Simulation {
	return &Simulation{
		cfg:       cfg,
		current:   cfg.MaxCharge,
		max:       cfg.MaxCharge,
		consumers: make(map[string]*Consumer),
		state:     StateNormal,
	}
}

// RegisterConsumer registers a light-like drain. Registration is
// idempotent by id: re-registering overwrites the previous record.
// Base intensity is captured from the emitter at registration time.
func (s *Simulation) RegisterConsumer(id string, emitter Emitter, kind ConsumerKind, priority int) {
	if priority < 1 {
		priority = 1
	}
	if priority > 5 {
		priority = 5
	}
	s.consumers[id] = &Consumer{
		ID:            id,
		Emitter:       emitter,
		Kind:          kind,
		BaseIntensity: emitter.Intensity(),
		Priority:      priority,
	}
}

// RemoveConsumer drops a registration. Removing an unknown id is a no-op.
func (s *Simulation) RemoveConsumer(id string) {
	delete(s.consumers, id)
}

// RemoveAllConsumers drops every registration. Called on restart so no
// stale emitter references survive into the next game.
func (s *Simulation) RemoveAllConsumers() {
	s.consumers = make(map[string]*Consumer)
}

// Reset restores a full pool and drops every consumer. Restart uses this
// so nothing from the previous game leaks into the next one.
func (s *Simulation) Reset() {
	s.RemoveAllConsumers()
	s.current = s.max
	s.elapsed = 0
	s.state = StateNormal
}

// ConsumerCount returns the number of registered consumers.
func (s *Simulation) ConsumerCount() int {
	return len(s.consumers)
}

// SetRate updates a consumer's consumption rate. The flashlight component
// pushes its level's rate on toggle-on and 0 on toggle-off; level changes
// made while off never reach the simulation.
func (s *Simulation) SetRate(id string, rate float64) {
	if c, ok := s.consumers[id]; ok {
		c.Rate = rate
	}
}

// Tick advances the simulation: drains the pool by the summed active
// rates, recomputes the discrete state, and applies per-consumer visual
// feedback. dt is in seconds; negative values are ignored.
func (s *Simulation) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt

	s.current -= s.totalRate() * dt
	if s.current < 0 {
		s.current = 0
	}

	s.state = stateFor(s.Percentage())

	for _, c := range s.consumers {
		s.applyVisuals(c, dt)
	}
}

// applyVisuals computes the consumer's intensity for the current state,
// then layers any active surge boost on top.
func (s *Simulation) applyVisuals(c *Consumer, dt float64) {
	pct := s.Percentage()

	var intensity float64
	touched := true

	switch s.state {
	case StateDepleted:
		intensity = 0

	case StateCritical:
		// Sinusoidal flicker, phase-offset by priority so lights do not
		// blink in lockstep. The flashlight only flickers while on.
		if c.Kind == KindFlashlight && c.Rate <= 0 {
			touched = false
		} else {
			flicker := math.Sin(s.elapsed*10+float64(c.Priority))*0.3 + 0.7
			intensity = c.BaseIntensity * flicker * flickerBaseFactor
		}

	case StateLow:
		// Linear ramp: full at the 40% boundary, dark at 0.
		intensity = c.BaseIntensity * (pct / lowThreshold)

	default: // StateNormal
		if c.Kind == KindFlashlight {
			// The flashlight component owns its intensity while power is
			// healthy; the simulation must not fight it.
			touched = false
		} else {
			intensity = c.BaseIntensity
		}
	}

	if !touched {
		s.decaySurge(c, dt)
		return
	}

	if c.surge != nil {
		boost, done := c.surge.Update(float32(dt))
		intensity += c.surgeAmount * float64(boost)
		if done {
			c.surge = nil
		}
	}

	c.Emitter.SetIntensity(intensity)
}

// decaySurge advances a surge tween for consumers whose intensity the
// simulation is not currently touching, so the boost still expires.
func (s *Simulation) decaySurge(c *Consumer, dt float64) {
	if c.surge == nil {
		return
	}
	if _, done := c.surge.Update(float32(dt)); done {
		c.surge = nil
	}
}

// AddCharge injects the rarity's charge value into the pool and returns
// the amount actually added after clamping at capacity; overflow is
// discarded, not banked. Also kicks off the cosmetic surge boost on every
// consumer.
func (s *Simulation) AddCharge(rarity levelgen.Rarity) float64 {
	value := s.chargeFor(rarity)

	actual := math.Min(s.max, s.current+value) - s.current
	s.current += actual

	for _, c := range s.consumers {
		s.startSurge(c)
	}

	return actual
}

// startSurge arms a 500ms linearly decaying intensity boost, capped at
// the smaller of 1.5x base and 2x the pre-surge intensity.
func (s *Simulation) startSurge(c *Consumer) {
	pre := c.Emitter.Intensity()
	target := math.Min(surgeBaseCap*c.BaseIntensity, surgePreSurgeCap*pre)
	if target <= pre {
		return
	}
	c.surgeAmount = target - pre
	c.surge = gween.New(1, 0, surgeDuration, ease.Linear)
}

// chargeFor maps a rarity to its configured charge value.
func (s *Simulation) chargeFor(rarity levelgen.Rarity) float64 {
	switch rarity {
	case levelgen.RarityCommon:
		return s.cfg.ChargeCommon
	case levelgen.RarityRare:
		return s.cfg.ChargeRare
	case levelgen.RarityEpic:
		return s.cfg.ChargeEpic
	case levelgen.RarityLegendary:
		return s.cfg.ChargeLegendary
	default:
		return 0
	}
}

// totalRate sums consumption over all currently active consumers.
func (s *Simulation) totalRate() float64 {
	total := 0.0
	for _, c := range s.consumers {
		if c.active() {
			total += c.Rate
		}
	}
	return total
}

// Current returns the current charge.
func (s *Simulation) Current() float64 {
	return s.current
}

// Max returns the pool capacity.
func (s *Simulation) Max() float64 {
	return s.max
}

// Percentage returns the pool level as 0-100.
func (s *Simulation) Percentage() float64 {
	if s.max <= 0 {
		return 0
	}
	return s.current / s.max * 100
}

// State returns the discrete power state as of the last tick.
func (s *Simulation) State() State {
	return s.state
}

// Stats returns a HUD snapshot. ETA is time until depletion at the
// current drain; +Inf when nothing is draining.
func (s *Simulation) Stats() Stats {
	rate := s.totalRate()
	eta := math.Inf(1)
	if rate > 0 {
		eta = s.current / rate
	}
	return Stats{
		Current:    s.current,
		Max:        s.max,
		Rate:       rate,
		ETASeconds: eta,
	}
}
