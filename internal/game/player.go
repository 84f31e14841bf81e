package game

import "github.com/google/uuid"

// Player settings.
const (
	PlayerMaxHealth     = 100
	PlayerBlockDuration = 1.5 // seconds the block stance lasts
	PlayerCastDuration  = 0.8 // seconds the cast animation plays
)

// Player is the controllable character. All mutation happens on the
// simulation tick.
type Player struct {
	id     string
	pos    Vec2
	health int

	blocking   bool
	blockTimer float64

	casting   bool
	castTimer float64
	facing    Vec2
}

// NewPlayer creates a player at the given position with full health.
func NewPlayer(pos Vec2) *Player {
	return &Player{
		id:     uuid.NewString(),
		pos:    pos,
		health: PlayerMaxHealth,
		facing: Vec2{Y: 1},
	}
}

// ID returns the player's unique ID.
func (p *Player) ID() string { return p.id }

// Pos returns the player's position.
func (p *Player) Pos() Vec2 { return p.pos }

// SetPos moves the player.
func (p *Player) SetPos(pos Vec2) { p.pos = pos }

// Alive reports whether the player has health left.
func (p *Player) Alive() bool { return p.health > 0 }

// Health returns current health.
func (p *Player) Health() int { return p.health }

// StartBlock raises the block stance for a fixed window. Incoming
// damage is ignored while it lasts.
func (p *Player) StartBlock() {
	if !p.Alive() {
		return
	}
	p.blocking = true
	p.blockTimer = PlayerBlockDuration
}

// Blocking reports whether the block stance is active.
func (p *Player) Blocking() bool { return p.blocking }

// PlayCastToward turns the player toward the target and starts the
// cast animation window.
func (p *Player) PlayCastToward(target Vec2) {
	dir := target.Sub(p.pos).Normalized()
	if dir != (Vec2{}) {
		p.facing = dir
	}
	p.casting = true
	p.castTimer = PlayerCastDuration
}

// Casting reports whether the cast animation is playing.
func (p *Player) Casting() bool { return p.casting }

// Facing returns the direction the player last cast or moved toward.
func (p *Player) Facing() Vec2 { return p.facing }

// TakeDamage applies damage unless the block stance is up.
func (p *Player) TakeDamage(amount int) {
	if !p.Alive() || p.blocking {
		return
	}
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
}

// Update advances block and cast timers.
func (p *Player) Update(dt float64) {
	if p.blocking {
		p.blockTimer -= dt
		if p.blockTimer <= 0 {
			p.blocking = false
			p.blockTimer = 0
		}
	}
	if p.casting {
		p.castTimer -= dt
		if p.castTimer <= 0 {
			p.casting = false
			p.castTimer = 0
		}
	}
}
