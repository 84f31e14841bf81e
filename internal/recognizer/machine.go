// Package recognizer turns per-frame letter classifications into
// confirmed letter events using hold-to-confirm and debounce logic.
package recognizer

import "time"

// State represents the recognition state.
type State int

const (
	// StateWaiting means no hand is detected and the machine is ready
	// for new input.
	StateWaiting State = iota
	// StateHolding means a letter is detected and the hold timer is
	// running.
	StateHolding
	// StateDebouncing means a letter has fired and the machine waits
	// for the hand to leave before re-arming.
	StateDebouncing
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateHolding:
		return "holding"
	case StateDebouncing:
		return "debouncing"
	default:
		return "unknown"
	}
}

// Machine is the hold/debounce state machine. It is advanced once per
// processed frame and is not safe for concurrent use; the recognizer
// loop is its only caller.
type Machine struct {
	holdTime time.Duration

	state     State
	current   rune // letter being held toward confirmation
	holdStart time.Time

	// Display info for the UI snapshot
	displayed    rune
	hasDisplayed bool
	progress     float64
}

// NewMachine creates a Machine in the waiting state.
func NewMachine(holdTime time.Duration) *Machine {
	return &Machine{holdTime: holdTime}
}

// Advance feeds one frame's classification into the machine: the detected
// letter (ignored when detected is false) and the frame's wall-clock time.
// It returns the confirmed letter and true when a hold completes; a letter
// fires at most once per hold episode.
func (m *Machine) Advance(letter rune, detected bool, now time.Time) (rune, bool) {
	switch m.state {
	case StateWaiting:
		if detected {
			// Start holding a new letter
			m.state = StateHolding
			m.current = letter
			m.holdStart = now
			m.displayed = letter
			m.hasDisplayed = true
			m.progress = 0
		} else {
			m.hasDisplayed = false
			m.progress = 0
		}

	case StateHolding:
		switch {
		case !detected:
			// Hand removed, go back to waiting
			m.reset()

		case letter != m.current:
			// Different letter, restart the hold timer; partial
			// progress never carries across letters
			m.current = letter
			m.holdStart = now
			m.displayed = letter
			m.progress = 0

		default:
			held := now.Sub(m.holdStart)
			m.progress = min(1.0, float64(held)/float64(m.holdTime))

			if held >= m.holdTime {
				// Confirmed: fire once, then wait for release
				m.state = StateDebouncing
				m.progress = 1.0
				return m.current, true
			}
		}

	case StateDebouncing:
		// Update the displayed letter only; never re-fire while the
		// hand stays present. A changed letter here tracks the
		// original behavior and may be worth revisiting: the display
		// follows the new sign without re-arming the hold timer.
		m.displayed = letter
		m.hasDisplayed = detected

		if !detected {
			m.reset()
		}
	}

	return 0, false
}

func (m *Machine) reset() {
	m.state = StateWaiting
	m.current = 0
	m.holdStart = time.Time{}
	m.displayed = 0
	m.hasDisplayed = false
	m.progress = 0
}

// State returns the current recognition state.
func (m *Machine) State() State {
	return m.state
}

// Displayed returns the letter currently shown to the UI and whether
// one is present.
func (m *Machine) Displayed() (rune, bool) {
	return m.displayed, m.hasDisplayed
}

// Progress returns the hold progress in [0, 1].
func (m *Machine) Progress() float64 {
	return m.progress
}
