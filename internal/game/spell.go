package game

import "unicode"

// Spell settings.
const (
	SpellSpeed    = 200.0
	SpellLifetime = 2.0 // seconds before a spell fizzles
	SpellDamage   = 150
	SpellHitRange = 14.0
)

// SpellKind names a spell visual. Kinds rotate per cast and carry no
// gameplay difference.
type SpellKind string

// The cast rotation, in order.
var SpellKinds = []SpellKind{
	"fireball",
	"icebolt",
	"lightning",
	"arcane",
	"venom",
	"radiance",
	"shadow",
}

// Spell is a projectile locked onto a single target at cast time. It
// carries the letter it was cast with and lands only while the target
// still bears that letter; a re-tagged target lets it pass through.
type Spell struct {
	kind     SpellKind
	letter   rune
	pos      Vec2
	vel      Vec2
	targetID string
	age      float64
	done     bool
}

// NewTargeted creates a spell flying from the caster toward the target's
// position at cast time, tagged with the confirmed letter.
func NewTargeted(kind SpellKind, letter rune, from Vec2, target Tagged) *Spell {
	vel := target.Pos().Sub(from).Normalized().Scale(SpellSpeed)
	return &Spell{
		kind:     kind,
		letter:   unicode.ToUpper(letter),
		pos:      from,
		vel:      vel,
		targetID: target.ID(),
	}
}

// Kind returns the spell's visual kind.
func (s *Spell) Kind() SpellKind { return s.kind }

// Letter returns the letter the spell was cast with.
func (s *Spell) Letter() rune { return s.letter }

// CanHit reports whether the spell may land on an entity bearing the
// given letter.
func (s *Spell) CanHit(letter rune) bool {
	return unicode.ToUpper(letter) == s.letter
}

// Pos returns the spell's position.
func (s *Spell) Pos() Vec2 { return s.pos }

// TargetID returns the ID of the entity this spell is locked onto.
func (s *Spell) TargetID() string { return s.targetID }

// Done reports whether the spell has hit or fizzled.
func (s *Spell) Done() bool { return s.done }

// Update moves the spell and resolves the hit against its locked
// target. Damageable is implemented by every entity a spell can land on.
func (s *Spell) Update(dt float64, target Tagged) {
	if s.done {
		return
	}

	s.age += dt
	if s.age >= SpellLifetime {
		s.done = true
		return
	}
	s.pos = s.pos.Add(s.vel.Scale(dt))

	if target == nil || !target.Alive() {
		return
	}
	if s.pos.Dist(target.Pos()) > SpellHitRange {
		return
	}
	if !s.CanHit(target.Letter()) {
		// Target was re-tagged mid-flight; the spell flies past
		return
	}

	if d, ok := target.(Damageable); ok {
		d.TakeDamage(SpellDamage)
	}
	s.done = true
}

// Damageable is implemented by entities that spells and bolts can hurt.
type Damageable interface {
	TakeDamage(amount int)
}
