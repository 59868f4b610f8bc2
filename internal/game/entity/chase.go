package entity

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Phase is a stage of the temple scene's script.
type Phase uint8

const (
	// PhaseOrbit: the human circles the temple.
	PhaseOrbit Phase = iota
	// PhaseChase: the human hunts the jellyfish, then the orb.
	PhaseChase
)

func (p Phase) String() string {
	if p == PhaseChase {
		return "chase"
	}
	return "orbit"
}

// Event reports what a Chase update changed.
type Event uint8

const (
	EventNone Event = iota
	EventChaseStarted
	EventJellyfishDefeated
	EventOrbDefeated
)

func (e Event) String() string {
	switch e {
	case EventChaseStarted:
		return "chase started"
	case EventJellyfishDefeated:
		return "jellyfish defeated"
	case EventOrbDefeated:
		return "orb defeated"
	default:
		return "none"
	}
}

// Chase defaults.
const (
	DefaultChaseAfter = 35.0
	DefaultChaseSpeed = 0.01
	DefaultThreshold  = 0.5

	humanOrbitRadius = 7.5
	humanOrbitSpeed  = 0.5
)

// HumanOrbit returns the human's position on its orbit at time t.
func HumanOrbit(t float32) mgl32.Vec3 {
	a := humanOrbitSpeed * t
	return mgl32.Vec3{
		humanOrbitRadius * cos(a),
		2 + 0.5*sin(2*a),
		humanOrbitRadius * sin(a),
	}
}

// ApproachTarget moves pos a fraction speed of the way to target and
// returns the distance measured before the step.
func ApproachTarget(pos *mgl32.Vec3, target mgl32.Vec3, speed float32) float32 {
	d := target.Sub(*pos)
	*pos = pos.Add(d.Mul(speed))
	return d.Len()
}

// Chase is the state machine of the temple scene. It owns the human's
// position and which targets are still alive.
type Chase struct {
	ChaseAfter float32
	Speed      float32
	Threshold  float32
	Orb        mgl32.Vec3

	phase       Phase
	human       mgl32.Vec3
	anchor      mgl32.Vec3
	jellyfishUp bool
	orbUp       bool
}

// NewChase returns a machine in the orbit phase with default tuning.
func NewChase() *Chase {
	return &Chase{
		ChaseAfter:  DefaultChaseAfter,
		Speed:       DefaultChaseSpeed,
		Threshold:   DefaultThreshold,
		Orb:         OrbPosition,
		human:       HumanOrbit(0),
		jellyfishUp: true,
		orbUp:       true,
	}
}

func (c *Chase) Phase() Phase                { return c.phase }
func (c *Chase) Human() mgl32.Vec3           { return c.human }
func (c *Chase) JellyfishDefeated() bool     { return !c.jellyfishUp }
func (c *Chase) OrbDefeated() bool           { return !c.orbUp }
func (c *Chase) Done() bool                  { return !c.jellyfishUp && !c.orbUp }
func (c *Chase) JellyfishAnchor() mgl32.Vec3 { return c.anchor }

// Jellyfish returns where the jellyfish floats at time t: on its orbit
// until the chase starts, then at the spot it was caught in.
func (c *Chase) Jellyfish(t float32) mgl32.Vec3 {
	if c.phase == PhaseOrbit {
		return JellyfishOrbit(t)
	}
	return c.anchor
}

// Target returns the position currently pursued. ok is false outside the
// chase phase and once both targets are gone.
func (c *Chase) Target() (pos mgl32.Vec3, ok bool) {
	if c.phase != PhaseChase {
		return mgl32.Vec3{}, false
	}
	switch {
	case c.jellyfishUp:
		return c.anchor, true
	case c.orbUp:
		return c.Orb, true
	}
	return mgl32.Vec3{}, false
}

// Update advances the machine to simulation time t. It is called once per
// frame; in the chase phase each call is one approach step.
func (c *Chase) Update(t float32) Event {
	if c.phase == PhaseOrbit {
		if t <= c.ChaseAfter {
			c.human = HumanOrbit(t)
			return EventNone
		}
		c.phase = PhaseChase
		c.anchor = JellyfishOrbit(t)
		return EventChaseStarted
	}

	target, ok := c.Target()
	if !ok {
		return EventNone
	}
	if ApproachTarget(&c.human, target, c.Speed) >= c.Threshold {
		return EventNone
	}
	if c.jellyfishUp {
		c.jellyfishUp = false
		return EventJellyfishDefeated
	}
	c.orbUp = false
	return EventOrbDefeated
}
