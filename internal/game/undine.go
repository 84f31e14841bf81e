package game

import (
	"math/rand"
	"unicode"

	"github.com/google/uuid"
)

// Undine settings.
const (
	UndineMaxHealth       = 100
	UndineDriftSpeed      = 30.0
	UndineBoltSpeed       = 120.0
	UndineBoltDamage      = 25
	UndineBoltHitRadius   = 16.0
	UndineBoltLifetime    = 3.0
	UndineAttackRange     = 300.0
	UndineAttackCooldown  = 2.5 // base seconds between bolts
	UndineAttackJitter    = 1.5 // extra random seconds
	UndineDriftRetarget   = 2.0 // seconds before picking a new drift direction
)

// Undine is a flying water spirit. It drifts around its spawn area and
// lobs water bolts at the player from range.
type Undine struct {
	id     string
	letter rune
	pos    Vec2
	health int

	dir         Vec2
	driftTimer  float64
	attackTimer float64
}

// WaterBolt is an undine projectile aimed at the player.
type WaterBolt struct {
	pos Vec2
	vel Vec2
	age float64
}

// NewUndine creates a flying entity with the given letter tag.
func NewUndine(letter rune, pos Vec2) *Undine {
	return &Undine{
		id:          uuid.NewString(),
		letter:      unicode.ToUpper(letter),
		pos:         pos,
		health:      UndineMaxHealth,
		attackTimer: UndineAttackCooldown,
	}
}

// ID returns the undine's unique ID.
func (u *Undine) ID() string { return u.id }

// Pos returns the undine's position.
func (u *Undine) Pos() Vec2 { return u.pos }

// Alive reports whether the undine has health left.
func (u *Undine) Alive() bool { return u.health > 0 }

// Letter returns the undine's letter tag.
func (u *Undine) Letter() rune { return u.letter }

// TakeDamage applies spell damage.
func (u *Undine) TakeDamage(amount int) {
	if !u.Alive() {
		return
	}
	u.health -= amount
	if u.health < 0 {
		u.health = 0
	}
}

// Update advances drift movement and returns a bolt when the attack
// timer elapses with the player in range, nil otherwise.
func (u *Undine) Update(dt float64, player *Player) *WaterBolt {
	if !u.Alive() {
		return nil
	}

	u.driftTimer -= dt
	if u.driftTimer <= 0 {
		u.dir = Vec2{X: rand.Float64()*2 - 1, Y: rand.Float64()*2 - 1}.Normalized()
		u.driftTimer = UndineDriftRetarget
	}
	u.pos = u.pos.Add(u.dir.Scale(UndineDriftSpeed * dt))

	if !player.Alive() {
		return nil
	}

	u.attackTimer -= dt
	if u.attackTimer > 0 {
		return nil
	}
	if u.pos.Dist(player.Pos()) > UndineAttackRange {
		return nil
	}

	u.attackTimer = UndineAttackCooldown + rand.Float64()*UndineAttackJitter
	vel := player.Pos().Sub(u.pos).Normalized().Scale(UndineBoltSpeed)
	return &WaterBolt{pos: u.pos, vel: vel}
}

// Pos returns the bolt's position.
func (b *WaterBolt) Pos() Vec2 { return b.pos }

// Update moves the bolt and reports whether it hit the player.
// Expired or landed bolts should be dropped by the caller.
func (b *WaterBolt) Update(dt float64, player *Player) bool {
	b.age += dt
	b.pos = b.pos.Add(b.vel.Scale(dt))

	if player.Alive() && b.pos.Dist(player.Pos()) <= UndineBoltHitRadius {
		player.TakeDamage(UndineBoltDamage)
		return true
	}
	return false
}

// Expired reports whether the bolt outlived its lifetime.
func (b *WaterBolt) Expired() bool {
	return b.age >= UndineBoltLifetime
}
