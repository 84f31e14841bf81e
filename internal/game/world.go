package game

import (
	"math/rand"
	"unicode"
)

// World spawn settings.
const (
	GroundSpawnRadius  = 220.0 // min distance from the player for ground spawns
	GroundSpawnSpread  = 120.0
	AirSpawnRadius     = 180.0
	AirSpawnSpread     = 100.0
	BlockUnlockedAfter = 1 // wave index from which the block sign works
)

// World owns all game state: the player, the two target pools,
// projectiles in flight, and wave progression. Everything in it is
// mutated only on the simulation tick.
type World struct {
	player *Player
	ground *Pool
	air    *Pool
	lich   *Lich

	spells []*Spell
	bolts  []*WaterBolt

	waves     WaveConfig
	waveIndex int
	castIndex int
	cleared   bool
}

// NewWorld creates a world with the player at the given position and
// spawns the first wave.
func NewWorld(playerPos Vec2, waves WaveConfig) *World {
	w := &World{
		player: NewPlayer(playerPos),
		ground: NewPool(),
		air:    NewPool(),
		waves:  waves,
	}
	w.spawnWave()
	return w
}

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Ground returns the ground enemy pool.
func (w *World) Ground() *Pool { return w.ground }

// Air returns the flying entity pool.
func (w *World) Air() *Pool { return w.air }

// Spells returns the spells currently in flight.
func (w *World) Spells() []*Spell { return w.spells }

// Lich returns the boss, nil until a boss wave spawns it.
func (w *World) Lich() *Lich { return w.lich }

// WaveIndex returns the zero-based index of the current wave.
func (w *World) WaveIndex() int { return w.waveIndex }

// CurrentWave returns the wave being fought.
func (w *World) CurrentWave() Wave {
	return w.waves.Waves[w.waveIndex]
}

// Cleared reports whether every wave has been beaten.
func (w *World) Cleared() bool { return w.cleared }

// BlockUnlocked reports whether the block sign does anything yet. The
// first wave is a tutorial without it.
func (w *World) BlockUnlocked() bool {
	return w.waveIndex >= BlockUnlockedAfter
}

// CastSpellAt fires the next spell in the rotation from the player at
// the target, tagged with the confirmed letter, and plays the cast
// animation.
func (w *World) CastSpellAt(letter rune, target Tagged) *Spell {
	kind := SpellKinds[w.castIndex%len(SpellKinds)]
	w.castIndex++

	w.player.PlayCastToward(target.Pos())
	s := NewTargeted(kind, letter, w.player.Pos(), target)
	w.spells = append(w.spells, s)
	return s
}

// FindTarget looks an entity up by ID across both pools.
func (w *World) FindTarget(id string) Tagged {
	for _, pool := range []*Pool{w.ground, w.air} {
		for _, e := range pool.All() {
			if e.ID() == id {
				return e
			}
		}
	}
	return nil
}

// Update advances the whole simulation by dt seconds.
func (w *World) Update(dt float64) {
	w.player.Update(dt)

	for _, e := range w.ground.All() {
		switch v := e.(type) {
		case *Enemy:
			v.Update(dt, w.player)
		case *Lich:
			v.Update(dt, w.player)
		}
	}
	for _, e := range w.air.All() {
		if u, ok := e.(*Undine); ok {
			if bolt := u.Update(dt, w.player); bolt != nil {
				w.bolts = append(w.bolts, bolt)
			}
		}
	}

	kept := w.spells[:0]
	for _, s := range w.spells {
		s.Update(dt, w.FindTarget(s.TargetID()))
		if !s.Done() {
			kept = append(kept, s)
		}
	}
	w.spells = kept

	keptBolts := w.bolts[:0]
	for _, b := range w.bolts {
		hit := b.Update(dt, w.player)
		if !hit && !b.Expired() {
			keptBolts = append(keptBolts, b)
		}
	}
	w.bolts = keptBolts

	w.advanceWave()
}

func (w *World) advanceWave() {
	if w.cleared || w.ground.AliveCount() > 0 || w.air.AliveCount() > 0 {
		return
	}
	if w.waveIndex+1 >= len(w.waves.Waves) {
		w.cleared = true
		return
	}
	w.waveIndex++
	w.spawnWave()
}

func (w *World) spawnWave() {
	wave := w.CurrentWave()

	// The block letter commands the player and never reaches the target
	// search, so an entity tagged with it could not be attacked and its
	// wave could never clear. Drop it from the spawn pool.
	pool := make([]rune, 0, len(wave.LetterPool()))
	for _, r := range wave.LetterPool() {
		if unicode.ToUpper(r) == BlockLetter {
			continue
		}
		pool = append(pool, r)
	}
	if len(pool) == 0 {
		pool = []rune{'A'}
	}

	w.ground.Clear()
	w.air.Clear()
	w.spells = nil
	w.bolts = nil

	pick := func() rune { return pool[rand.Intn(len(pool))] }

	for i := 0; i < wave.Slimes; i++ {
		w.ground.Add(NewEnemy(EnemySlime, pick(), w.spawnPos(GroundSpawnRadius, GroundSpawnSpread)))
	}
	for i := 0; i < wave.Skeletons; i++ {
		w.ground.Add(NewEnemy(EnemySkeleton, pick(), w.spawnPos(GroundSpawnRadius, GroundSpawnSpread)))
	}
	for i := 0; i < wave.Undines; i++ {
		w.air.Add(NewUndine(pick(), w.spawnPos(AirSpawnRadius, AirSpawnSpread)))
	}
	if wave.Boss {
		w.lich = NewLich(w.spawnPos(GroundSpawnRadius, GroundSpawnSpread), pool)
		w.ground.Add(w.lich)
	}
}

func (w *World) spawnPos(radius, spread float64) Vec2 {
	dir := Vec2{X: rand.Float64()*2 - 1, Y: rand.Float64()*2 - 1}.Normalized()
	if dir == (Vec2{}) {
		dir = Vec2{X: 1}
	}
	return w.player.Pos().Add(dir.Scale(radius + rand.Float64()*spread))
}
