package recognizer

import (
	"testing"
	"time"
)

const holdTime = 500 * time.Millisecond

// feed advances the machine through a sequence of classifications
// sampled at a fixed interval, collecting every fired letter.
func feed(t *testing.T, m *Machine, frames []rune, interval time.Duration) []rune {
	t.Helper()

	now := time.Unix(1000, 0)
	var fired []rune
	for _, f := range frames {
		letter, ok := m.Advance(f, f != 0, now)
		if ok {
			fired = append(fired, letter)
		}
		now = now.Add(interval)
	}
	return fired
}

func TestMachine_HoldConfirmsOnce(t *testing.T) {
	m := NewMachine(holdTime)

	// [None, A, A, A, A, A, None] at 0.15s: the hold crosses 0.5s on
	// the 4th A sample, fires exactly once, then returns to waiting.
	fired := feed(t, m, []rune{0, 'A', 'A', 'A', 'A', 'A', 0}, 150*time.Millisecond)

	if len(fired) != 1 || fired[0] != 'A' {
		t.Fatalf("fired = %q, want exactly one 'A'", fired)
	}
	if m.State() != StateWaiting {
		t.Errorf("state = %v, want waiting after hand removed", m.State())
	}
}

func TestMachine_ShortHoldNeverFires(t *testing.T) {
	m := NewMachine(holdTime)
	now := time.Unix(1000, 0)

	m.Advance('A', true, now)
	// Just short of the hold time
	_, ok := m.Advance('A', true, now.Add(holdTime-time.Millisecond))
	if ok {
		t.Error("letter fired before hold time elapsed")
	}
	if m.State() != StateHolding {
		t.Errorf("state = %v, want holding", m.State())
	}

	// Crossing the hold time fires exactly once
	letter, ok := m.Advance('A', true, now.Add(holdTime+time.Millisecond))
	if !ok || letter != 'A' {
		t.Fatalf("Advance = %q, %v; want 'A', true", letter, ok)
	}
}

func TestMachine_ProgressTracksElapsed(t *testing.T) {
	m := NewMachine(holdTime)
	now := time.Unix(1000, 0)

	m.Advance('A', true, now)
	m.Advance('A', true, now.Add(250*time.Millisecond))

	if p := m.Progress(); p < 0.49 || p > 0.51 {
		t.Errorf("progress at half hold = %f, want ~0.5", p)
	}
}

func TestMachine_LetterSwitchRestartsTimer(t *testing.T) {
	m := NewMachine(holdTime)
	now := time.Unix(1000, 0)

	m.Advance('A', true, now)
	m.Advance('A', true, now.Add(300*time.Millisecond))

	// Switch to C before A confirms: progress resets, A never fires
	_, ok := m.Advance('C', true, now.Add(400*time.Millisecond))
	if ok {
		t.Fatal("switching letters must not fire")
	}
	if p := m.Progress(); p != 0 {
		t.Errorf("progress after switch = %f, want 0", p)
	}

	// C held from 400ms: fires at 900ms, as 'C' not 'A'
	letter, ok := m.Advance('C', true, now.Add(950*time.Millisecond))
	if !ok || letter != 'C' {
		t.Fatalf("Advance = %q, %v; want 'C', true", letter, ok)
	}
}

func TestMachine_DebounceBlocksRefire(t *testing.T) {
	m := NewMachine(holdTime)
	now := time.Unix(1000, 0)

	m.Advance('A', true, now)
	_, ok := m.Advance('A', true, now.Add(holdTime))
	if !ok {
		t.Fatal("expected confirmation at hold time")
	}
	if m.State() != StateDebouncing {
		t.Fatalf("state after fire = %v, want debouncing", m.State())
	}

	// Any detection while the hand stays present never re-fires,
	// including a sustained hold of the same letter
	for i := 1; i <= 10; i++ {
		if _, ok := m.Advance('A', true, now.Add(holdTime+time.Duration(i)*time.Second)); ok {
			t.Fatal("re-fired during debounce")
		}
	}

	// A different letter updates the display without re-arming
	if _, ok := m.Advance('D', true, now.Add(20*time.Second)); ok {
		t.Fatal("re-fired during debounce on letter change")
	}
	if letter, has := m.Displayed(); !has || letter != 'D' {
		t.Errorf("displayed = %q, %v; want 'D', true", letter, has)
	}
	if m.State() != StateDebouncing {
		t.Errorf("state = %v, want debouncing while hand present", m.State())
	}

	// Only removing the hand re-arms
	m.Advance(0, false, now.Add(21*time.Second))
	if m.State() != StateWaiting {
		t.Errorf("state = %v, want waiting after release", m.State())
	}
}

func TestMachine_ReleaseAndRepeatFiresAgain(t *testing.T) {
	m := NewMachine(holdTime)

	// Two separate hold episodes of the same letter fire twice
	frames := []rune{'A', 'A', 'A', 'A', 'A', 0, 'A', 'A', 'A', 'A', 'A'}
	fired := feed(t, m, frames, 150*time.Millisecond)

	if len(fired) != 2 {
		t.Fatalf("fired %q, want two confirmations", fired)
	}
}

func TestMachine_FlickerNeverFires(t *testing.T) {
	m := NewMachine(holdTime)

	// Rapidly alternating letters never accumulate enough hold
	frames := []rune{'A', 'C', 'A', 'C', 'A', 'C', 'A', 'C', 'A', 'C'}
	fired := feed(t, m, frames, 150*time.Millisecond)

	if len(fired) != 0 {
		t.Fatalf("fired %q, want none for flickering input", fired)
	}
}

func TestMachine_WaitingIgnoresEmptyFrames(t *testing.T) {
	m := NewMachine(holdTime)

	fired := feed(t, m, []rune{0, 0, 0, 0}, 150*time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("fired %q on empty input", fired)
	}
	if m.State() != StateWaiting {
		t.Errorf("state = %v, want waiting", m.State())
	}
	if _, has := m.Displayed(); has {
		t.Error("no letter should be displayed")
	}
}
