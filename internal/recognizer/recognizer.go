package recognizer

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ayusman/spellsign/internal/capture"
	"github.com/ayusman/spellsign/internal/classifier"
	"github.com/ayusman/spellsign/internal/detector"
)

// Default recognizer settings.
const (
	// DefaultHoldTime is how long a letter must be held before it fires.
	DefaultHoldTime = 500 * time.Millisecond
	// DefaultReopenBackoff is the pause before reopening a camera that
	// stopped delivering frames.
	DefaultReopenBackoff = 500 * time.Millisecond
	// DefaultFrameDelay is the small sleep after each frame to cap CPU
	// usage.
	DefaultFrameDelay = 10 * time.Millisecond
	// stopTimeout bounds how long Stop waits for the loop to exit.
	stopTimeout = 2 * time.Second
)

// Config holds configuration options for the recognizer.
type Config struct {
	// HoldTime is how long a letter must be continuously detected
	// before it is confirmed.
	HoldTime time.Duration

	// ReopenBackoff is the pause before reopening the camera after a
	// read failure.
	ReopenBackoff time.Duration

	// FrameDelay is the sleep between loop iterations.
	FrameDelay time.Duration
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		HoldTime:      DefaultHoldTime,
		ReopenBackoff: DefaultReopenBackoff,
		FrameDelay:    DefaultFrameDelay,
	}
}

// Snapshot is an immutable copy of the current detection state, safe to
// read from any goroutine.
type Snapshot struct {
	Letter    rune
	HasLetter bool
	Progress  float64
	State     State
}

// Recognizer runs letter detection in a background goroutine and exposes
// confirmed letters through a FIFO queue and display state through
// snapshots. The loop goroutine is the only producer; the game tick is
// the only consumer.
type Recognizer struct {
	config     Config
	camera     capture.Camera
	detector   detector.Detector
	classifier classifier.Classifier
	machine    *Machine

	// mu guards snapshot and availability; held only for copies,
	// never across camera or detector I/O.
	mu         sync.Mutex
	snapshot   Snapshot
	available  bool
	errMessage string

	// queueMu guards the confirmed-letter FIFO.
	queueMu sync.Mutex
	queue   []rune

	// runMu guards the loop lifecycle.
	runMu  sync.Mutex
	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a Recognizer. The camera is opened and the loop started by
// Start, not here.
func New(config Config, camera capture.Camera, det detector.Detector, cls classifier.Classifier) *Recognizer {
	if config.HoldTime <= 0 {
		config.HoldTime = DefaultHoldTime
	}
	if config.ReopenBackoff <= 0 {
		config.ReopenBackoff = DefaultReopenBackoff
	}
	if config.FrameDelay <= 0 {
		config.FrameDelay = DefaultFrameDelay
	}

	return &Recognizer{
		config:     config,
		camera:     camera,
		detector:   det,
		classifier: cls,
		machine:    NewMachine(config.HoldTime),
	}
}

// Start spawns the background detection loop if it is not already
// running. Initialization failures are recorded and surfaced through
// IsAvailable and ErrMessage rather than returned.
func (r *Recognizer) Start() {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	if r.stopCh != nil {
		return // Already running
	}

	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	go r.run(r.stopCh, r.doneCh)
}

// Stop signals the loop to exit and waits for it, bounded by a timeout.
// The loop observes the flag after the current frame completes, so the
// worst-case latency is one frame-acquisition period.
func (r *Recognizer) Stop() {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	if r.stopCh == nil {
		return
	}

	close(r.stopCh)

	select {
	case <-r.doneCh:
	case <-time.After(stopTimeout):
		log.Println("recognizer: loop did not stop within timeout")
	}

	r.stopCh = nil
	r.doneCh = nil
}

// IsAvailable reports whether the camera pipeline initialized and is
// delivering detections.
func (r *Recognizer) IsAvailable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.available
}

// ErrMessage returns the initialization error message, or empty when
// the recognizer is healthy.
func (r *Recognizer) ErrMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errMessage
}

// Snapshot returns a copy of the current detection state.
func (r *Recognizer) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot
}

// DrainConfirmed pops and returns all queued confirmed letters, oldest
// first. Returns nil when the queue is empty; never blocks.
func (r *Recognizer) DrainConfirmed() []rune {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()

	if len(r.queue) == 0 {
		return nil
	}

	letters := r.queue
	r.queue = nil
	return letters
}

func (r *Recognizer) enqueue(letter rune) {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()
	r.queue = append(r.queue, letter)
}

func (r *Recognizer) setUnavailable(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available = false
	r.errMessage = message
	log.Printf("recognizer unavailable: %s", message)
}

func (r *Recognizer) setAvailable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available = true
	r.errMessage = ""
}

// run is the background detection loop. It is the only writer of the
// snapshot and the only producer into the confirmed-letter queue.
func (r *Recognizer) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	if r.detector == nil {
		r.setUnavailable("hand landmarker not available")
		return
	}
	if r.classifier == nil {
		r.setUnavailable("letter classifier not available")
		return
	}

	if err := r.camera.Open(); err != nil {
		r.setUnavailable(fmt.Sprintf("could not open camera: %v", err))
		return
	}
	defer r.camera.Close()

	r.setAvailable()

	for {
		select {
		case <-stopCh:
			return
		default:
		}

		frame, err := r.camera.ReadFrame()
		if err != nil {
			// Camera lost mid-session: back off and reopen. This
			// repeats until the device recovers or Stop is called.
			select {
			case <-stopCh:
				return
			case <-time.After(r.config.ReopenBackoff):
			}
			if err := r.camera.Reopen(); err != nil {
				log.Printf("recognizer: camera reopen failed: %v", err)
			}
			continue
		}

		hands, err := r.detector.Detect(frame)
		frame.Close()
		if err != nil {
			log.Printf("recognizer: detect failed: %v", err)
			continue
		}

		var letter rune
		var detected bool
		if len(hands) > 0 {
			letter, detected = r.classifier.Predict(hands[0].Features())
		}

		confirmed, fired := r.machine.Advance(letter, detected, time.Now())
		if fired {
			r.enqueue(confirmed)
		}

		r.publishSnapshot()

		select {
		case <-stopCh:
			return
		case <-time.After(r.config.FrameDelay):
		}
	}
}

func (r *Recognizer) publishSnapshot() {
	displayed, has := r.machine.Displayed()
	snapshot := Snapshot{
		Letter:    displayed,
		HasLetter: has,
		Progress:  r.machine.Progress(),
		State:     r.machine.State(),
	}

	r.mu.Lock()
	r.snapshot = snapshot
	r.mu.Unlock()
}
