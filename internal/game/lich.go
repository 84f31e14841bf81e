package game

import (
	"math/rand"
	"unicode"

	"github.com/google/uuid"
)

// Lich boss settings. The lich counts hits rather than damage.
const (
	LichMaxHits     = 5
	LichXOffset     = 312.0 // keeps this far to the player's left
	LichSpeedFactor = 0.6   // fraction of player speed while repositioning
	LichSpeed       = 120.0 * LichSpeedFactor
	LichBlockTime   = 1.2 // seconds of the spin attack that deflects spells
	LichSpinRest    = 4.0 // base seconds between spins
	LichSpinJitter  = 2.0 // extra random seconds
)

// Lich is the boss: a ground entity that shadows the player, shrugs off
// hits while spinning, and swaps its letter tag to a different pool
// letter after every hit it takes.
type Lich struct {
	id     string
	letter rune
	pos    Vec2
	hits   int

	waveLetters []rune
	blockTimer  float64
	spinTimer   float64
}

// NewLich creates the boss with a letter drawn from the wave's pool.
func NewLich(pos Vec2, waveLetters []rune) *Lich {
	letters := normalizeLetters(waveLetters)
	l := &Lich{
		id:          uuid.NewString(),
		pos:         pos,
		hits:        LichMaxHits,
		waveLetters: letters,
		spinTimer:   LichSpinRest,
	}
	if len(letters) > 0 {
		l.letter = letters[rand.Intn(len(letters))]
	}
	return l
}

func normalizeLetters(letters []rune) []rune {
	out := make([]rune, 0, len(letters))
	for _, r := range letters {
		out = append(out, unicode.ToUpper(r))
	}
	return out
}

// ID returns the lich's unique ID.
func (l *Lich) ID() string { return l.id }

// Pos returns the lich's position.
func (l *Lich) Pos() Vec2 { return l.pos }

// Alive reports whether the lich has hits left.
func (l *Lich) Alive() bool { return l.hits > 0 }

// Letter returns the lich's current letter tag.
func (l *Lich) Letter() rune { return l.letter }

// Blocking reports whether the spin attack is deflecting spells.
func (l *Lich) Blocking() bool { return l.blockTimer > 0 }

// StartBlock begins the spin attack window.
func (l *Lich) StartBlock() {
	if l.Alive() {
		l.blockTimer = LichBlockTime
	}
}

// TakeDamage counts one hit regardless of amount. A blocked hit does
// nothing. After each hit that lands, the lich re-tags itself with a
// different letter from the wave pool so the same sign never works
// twice in a row.
func (l *Lich) TakeDamage(amount int) {
	if !l.Alive() || l.Blocking() {
		return
	}

	l.hits--
	if l.hits <= 0 {
		return
	}
	l.reassignLetter()
}

func (l *Lich) reassignLetter() {
	others := make([]rune, 0, len(l.waveLetters))
	for _, r := range l.waveLetters {
		if r != l.letter {
			others = append(others, r)
		}
	}
	if len(others) > 0 {
		l.letter = others[rand.Intn(len(others))]
	} else if len(l.waveLetters) > 0 {
		l.letter = l.waveLetters[rand.Intn(len(l.waveLetters))]
	}
}

// Update moves the lich toward its station to the player's left and
// runs the spin attack on its own cadence.
func (l *Lich) Update(dt float64, player *Player) {
	if !l.Alive() {
		return
	}

	if l.blockTimer > 0 {
		l.blockTimer -= dt
		if l.blockTimer < 0 {
			l.blockTimer = 0
		}
	} else {
		l.spinTimer -= dt
		if l.spinTimer <= 0 {
			l.StartBlock()
			l.spinTimer = LichSpinRest + rand.Float64()*LichSpinJitter
		}
	}

	station := player.Pos().Sub(Vec2{X: LichXOffset})
	toStation := station.Sub(l.pos)
	if toStation.Len() < 1 {
		return
	}
	step := toStation.Normalized().Scale(LichSpeed * dt)
	if step.Len() > toStation.Len() {
		step = toStation
	}
	l.pos = l.pos.Add(step)
}
