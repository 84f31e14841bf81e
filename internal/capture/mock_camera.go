package capture

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// MockCamera plays back pre-recorded frames for testing.
// It can inject read failures to exercise reconnect handling.
type MockCamera struct {
	frames     []*gocv.Mat
	index      int
	loop       bool
	mu         sync.Mutex
	running    bool
	failAfter  int // fail reads once this many frames have been served (0 = never)
	served     int
	reopens    int
	failActive bool
}

func NewMockCamera(frames []*gocv.Mat, loop bool) *MockCamera {
	return &MockCamera{
		frames: frames,
		loop:   loop,
	}
}

func (c *MockCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
	c.index = 0
	return nil
}

func (c *MockCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	return nil
}

// Reopen simulates releasing and reacquiring the device.
// It clears any injected failure so reads succeed again.
func (c *MockCamera) Reopen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
	c.failActive = false
	c.served = 0
	c.reopens++
	return nil
}

func (c *MockCamera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil, ErrCameraNotOpen
	}

	if c.failActive || (c.failAfter > 0 && c.served >= c.failAfter) {
		c.failActive = true
		return nil, fmt.Errorf("device read failed")
	}

	if len(c.frames) == 0 {
		return nil, fmt.Errorf("no frames available")
	}

	if c.index >= len(c.frames) {
		if c.loop {
			c.index = 0
		} else {
			return nil, fmt.Errorf("no more frames")
		}
	}

	// Clone the frame so the original isn't modified
	frame := c.frames[c.index].Clone()
	c.index++
	c.served++

	return &frame, nil
}

func (c *MockCamera) SetFPS(fps int) {}
func (c *MockCamera) FPS() int       { return 30 }
func (c *MockCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// FailAfter makes ReadFrame start failing once n frames have been served.
// The failure persists until Reopen is called.
func (c *MockCamera) FailAfter(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failAfter = n
}

// Reopens returns how many times Reopen has been called.
func (c *MockCamera) Reopens() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reopens
}

// Reset restarts playback from the beginning.
func (c *MockCamera) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = 0
	c.served = 0
	c.failActive = false
}
