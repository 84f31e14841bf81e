package game

import (
	"fmt"
	"log"
	"unicode"
)

// NoticeDuration is how long the "no target" notice stays visible.
const NoticeDuration = 1.5

// BlockLetter is the sign that raises the player's guard instead of
// casting.
const BlockLetter = 'B'

// Source delivers the letters confirmed since the previous tick, oldest
// first. The recognizer implements it.
type Source interface {
	DrainConfirmed() []rune
}

// Dispatcher turns confirmed letters into game actions once per tick:
// a block, a targeted spell, or a short on-screen notice when nothing
// carries the letter.
type Dispatcher struct {
	world  *World
	source Source

	notice      string
	noticeTimer float64
	onLetter    func(letter rune)
}

// NewDispatcher wires a letter source to a world.
func NewDispatcher(world *World, source Source) *Dispatcher {
	return &Dispatcher{world: world, source: source}
}

// Tick drains every letter confirmed since the last tick, applies them
// in confirmation order, then advances the simulation.
func (d *Dispatcher) Tick(dt float64) {
	if d.noticeTimer > 0 {
		d.noticeTimer -= dt
		if d.noticeTimer <= 0 {
			d.notice = ""
			d.noticeTimer = 0
		}
	}

	if d.source != nil {
		for _, letter := range d.source.DrainConfirmed() {
			d.HandleLetter(letter)
		}
	}

	d.world.Update(dt)
}

// Notice returns the current on-screen notice, empty when none is
// showing.
func (d *Dispatcher) Notice() string { return d.notice }

// OnLetter registers a callback invoked with each confirmed letter as
// it is applied, hits and misses alike. Set it before the tick loop
// starts; the tray uses it to show the last confirmed letter.
func (d *Dispatcher) OnLetter(fn func(letter rune)) {
	d.onLetter = fn
}

// HandleLetter resolves one confirmed letter. Letters are dropped
// outright while the player is dead. The block sign raises the guard
// once unlocked and is silently ignored before that. Any other letter
// targets the nearest matching entity, flying ones winning only when
// strictly nearer than the best ground match, so a tie goes to the
// ground enemy.
func (d *Dispatcher) HandleLetter(letter rune) {
	letter = unicode.ToUpper(letter)
	if d.onLetter != nil {
		d.onLetter(letter)
	}

	player := d.world.Player()
	if !player.Alive() {
		return
	}

	if letter == BlockLetter {
		if d.world.BlockUnlocked() {
			player.StartBlock()
			log.Printf("dispatch: block raised")
		}
		return
	}

	from := player.Pos()
	ground, haveGround := d.world.Ground().NearestByLetter(letter, from)
	air, haveAir := d.world.Air().NearestByLetter(letter, from)

	var target Tagged
	switch {
	case haveGround && haveAir:
		if from.Dist(air.Pos()) < from.Dist(ground.Pos()) {
			target = air
		} else {
			target = ground
		}
	case haveGround:
		target = ground
	case haveAir:
		target = air
	}

	if target == nil {
		d.notice = fmt.Sprintf("No enemy marked %c", letter)
		d.noticeTimer = NoticeDuration
		log.Printf("dispatch: no target for %c", letter)
		return
	}

	d.world.CastSpellAt(letter, target)
	log.Printf("dispatch: cast at %s (%c)", target.ID(), letter)
}
