package game

import (
	"testing"
)

type fakeSource struct {
	letters []rune
}

func (f *fakeSource) DrainConfirmed() []rune {
	out := f.letters
	f.letters = nil
	return out
}

// newTestWorld builds a world from empty waves so tests control every
// spawn themselves.
func newTestWorld(waveIndex int) *World {
	cfg := WaveConfig{Waves: []Wave{{Name: "first"}, {Name: "second"}, {Name: "third"}}}
	w := NewWorld(Vec2{}, cfg)
	w.waveIndex = waveIndex
	return w
}

func TestDispatcherNoTargetShowsNotice(t *testing.T) {
	w := newTestWorld(0)
	w.Ground().Add(NewEnemy(EnemySlime, 'A', Vec2{X: 40}))

	d := NewDispatcher(w, &fakeSource{letters: []rune{'F'}})
	d.Tick(0.01)

	if d.Notice() == "" {
		t.Fatal("expected a no-target notice for F")
	}
	if len(w.Spells()) != 0 {
		t.Fatal("a missed letter must not cast")
	}

	d.Tick(1.0)
	if d.Notice() == "" {
		t.Fatal("notice should still be up after 1.0s")
	}
	d.Tick(0.6)
	if d.Notice() != "" {
		t.Fatal("notice should clear after 1.5s")
	}
}

func TestDispatcherBlockGatedByWave(t *testing.T) {
	w := newTestWorld(0)
	w.Ground().Add(NewEnemy(EnemySlime, 'A', Vec2{X: 40}))
	d := NewDispatcher(w, &fakeSource{letters: []rune{'B'}})
	d.Tick(0.01)

	if w.Player().Blocking() {
		t.Fatal("block must be locked on the first wave")
	}
	if d.Notice() != "" {
		t.Fatal("a locked block is dropped silently, no notice")
	}

	w = newTestWorld(1)
	w.Ground().Add(NewEnemy(EnemySlime, 'A', Vec2{X: 40}))
	d = NewDispatcher(w, &fakeSource{letters: []rune{'B'}})
	d.Tick(0.01)

	if !w.Player().Blocking() {
		t.Fatal("block should raise from the second wave on")
	}
}

func TestDispatcherPrefersStrictlyNearerFlying(t *testing.T) {
	w := newTestWorld(1)
	ground := NewEnemy(EnemySkeleton, 'D', Vec2{X: 50})
	flying := NewUndine('D', Vec2{Y: 30})
	w.Ground().Add(ground)
	w.Air().Add(flying)

	d := NewDispatcher(w, nil)
	d.HandleLetter('D')

	if len(w.Spells()) != 1 {
		t.Fatalf("expected one spell, got %d", len(w.Spells()))
	}
	if got := w.Spells()[0].TargetID(); got != flying.ID() {
		t.Fatal("flying entity at 30 should beat ground enemy at 50")
	}
}

func TestDispatcherTieGoesToGround(t *testing.T) {
	w := newTestWorld(1)
	ground := NewEnemy(EnemySkeleton, 'D', Vec2{X: 40})
	flying := NewUndine('D', Vec2{Y: 40})
	w.Ground().Add(ground)
	w.Air().Add(flying)

	d := NewDispatcher(w, nil)
	d.HandleLetter('D')

	if got := w.Spells()[0].TargetID(); got != ground.ID() {
		t.Fatal("an exact distance tie should target the ground enemy")
	}
}

func TestDispatcherDropsLettersWhileDead(t *testing.T) {
	w := newTestWorld(1)
	w.Ground().Add(NewEnemy(EnemySlime, 'A', Vec2{X: 40}))
	w.Player().TakeDamage(PlayerMaxHealth)

	d := NewDispatcher(w, nil)
	d.HandleLetter('A')

	if len(w.Spells()) != 0 || d.Notice() != "" {
		t.Fatal("letters must be dropped outright while the player is dead")
	}
}

func TestDispatcherDrainsInConfirmationOrder(t *testing.T) {
	w := newTestWorld(1)
	a := NewEnemy(EnemySlime, 'A', Vec2{X: 40})
	c := NewUndine('C', Vec2{Y: 60})
	w.Ground().Add(a)
	w.Air().Add(c)

	src := &fakeSource{letters: []rune{'A', 'C'}}
	d := NewDispatcher(w, src)
	d.Tick(0.001)

	spells := w.Spells()
	if len(spells) != 2 {
		t.Fatalf("expected two casts, got %d", len(spells))
	}
	if spells[0].TargetID() != a.ID() || spells[1].TargetID() != c.ID() {
		t.Fatal("letters must be applied oldest first")
	}

	d.Tick(0.001)
	if len(w.Spells()) != 2 {
		t.Fatal("a drained queue must not re-deliver letters")
	}
}

func TestDispatcherReportsConfirmedLetters(t *testing.T) {
	w := newTestWorld(1)
	w.Ground().Add(NewEnemy(EnemySlime, 'A', Vec2{X: 40}))

	var seen []rune
	d := NewDispatcher(w, &fakeSource{letters: []rune{'a', 'F'}})
	d.OnLetter(func(letter rune) {
		seen = append(seen, letter)
	})
	d.Tick(0.01)

	if len(seen) != 2 || seen[0] != 'A' || seen[1] != 'F' {
		t.Fatalf("reported letters = %q, want uppercased hits and misses alike", string(seen))
	}
}

func TestDispatcherLowercaseLetterMatches(t *testing.T) {
	w := newTestWorld(1)
	a := NewEnemy(EnemySlime, 'A', Vec2{X: 40})
	w.Ground().Add(a)

	d := NewDispatcher(w, nil)
	d.HandleLetter('a')

	if len(w.Spells()) != 1 {
		t.Fatal("lowercase input should match an uppercase tag")
	}
}
