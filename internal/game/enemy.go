package game

import (
	"math/rand"
	"unicode"

	"github.com/google/uuid"
)

// Enemy settings.
const (
	EnemyMaxHealth       = 100
	EnemyChaseSpeed      = 40.0
	EnemyIdleSpeed       = 20.0
	EnemyDetectionRadius = 51.0
	EnemyAttackRange     = 12.0
	EnemyAttackDamage    = 50
	EnemyDamageCooldown  = 0.8 // seconds between melee hits
)

// EnemyKind identifies the ground enemy variant.
type EnemyKind string

const (
	EnemySlime    EnemyKind = "slime"
	EnemySkeleton EnemyKind = "skeleton"
)

// Enemy is a ground enemy that wanders until the player comes within
// detection range, then chases and attacks in melee.
type Enemy struct {
	id     string
	kind   EnemyKind
	letter rune
	pos    Vec2
	health int

	dir            Vec2
	wanderTimer    float64
	damageCooldown float64
}

// NewEnemy creates a ground enemy with the given letter tag.
func NewEnemy(kind EnemyKind, letter rune, pos Vec2) *Enemy {
	return &Enemy{
		id:     uuid.NewString(),
		kind:   kind,
		letter: unicode.ToUpper(letter),
		pos:    pos,
		health: EnemyMaxHealth,
	}
}

// ID returns the enemy's unique ID.
func (e *Enemy) ID() string { return e.id }

// Kind returns the enemy variant.
func (e *Enemy) Kind() EnemyKind { return e.kind }

// Pos returns the enemy's position.
func (e *Enemy) Pos() Vec2 { return e.pos }

// Alive reports whether the enemy has health left.
func (e *Enemy) Alive() bool { return e.health > 0 }

// Letter returns the enemy's letter tag.
func (e *Enemy) Letter() rune { return e.letter }

// TakeDamage applies spell damage.
func (e *Enemy) TakeDamage(amount int) {
	if !e.Alive() {
		return
	}
	e.health -= amount
	if e.health < 0 {
		e.health = 0
	}
}

// Update advances wander/chase movement and melee attacks.
func (e *Enemy) Update(dt float64, player *Player) {
	if !e.Alive() {
		return
	}

	if e.damageCooldown > 0 {
		e.damageCooldown -= dt
	}

	dist := e.pos.Dist(player.Pos())

	if player.Alive() && dist <= EnemyDetectionRadius {
		// Chase
		if dist <= EnemyAttackRange {
			if e.damageCooldown <= 0 {
				player.TakeDamage(EnemyAttackDamage)
				e.damageCooldown = EnemyDamageCooldown
			}
			return
		}
		e.dir = player.Pos().Sub(e.pos).Normalized()
		e.pos = e.pos.Add(e.dir.Scale(EnemyChaseSpeed * dt))
		return
	}

	// Wander: pick a new direction every few seconds
	e.wanderTimer -= dt
	if e.wanderTimer <= 0 {
		e.dir = Vec2{X: rand.Float64()*2 - 1, Y: rand.Float64()*2 - 1}.Normalized()
		e.wanderTimer = 1.0 + rand.Float64()*2.0
	}
	e.pos = e.pos.Add(e.dir.Scale(EnemyIdleSpeed * dt))
}
