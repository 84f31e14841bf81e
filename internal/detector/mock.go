package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It returns either a fixed result or steps through a scripted sequence
// of per-frame results.
type MockDetector struct {
	mu       sync.Mutex
	hands    []HandLandmarks
	sequence [][]HandLandmarks
	seqIndex int
	err      error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by every Detect call.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands = hands
	m.sequence = nil
}

// SetSequence makes Detect return one entry per call, in order.
// A nil entry means no hand for that frame. The last entry repeats
// once the sequence is exhausted.
func (m *MockDetector) SetSequence(sequence [][]HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sequence = sequence
	m.seqIndex = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	if m.sequence != nil {
		i := m.seqIndex
		if i >= len(m.sequence) {
			i = len(m.sequence) - 1
		} else {
			m.seqIndex++
		}
		return m.sequence[i], nil
	}

	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// FistLandmarks returns a preset hand shaped like the ASL letter A:
// a closed fist with the thumb resting against the side.
func FistLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point2D{X: 0.50, Y: 0.80}

	// Thumb alongside the fist
	landmarks.Points[ThumbCMC] = Point2D{X: 0.56, Y: 0.76}
	landmarks.Points[ThumbMCP] = Point2D{X: 0.59, Y: 0.70}
	landmarks.Points[ThumbIP] = Point2D{X: 0.60, Y: 0.64}
	landmarks.Points[ThumbTip] = Point2D{X: 0.60, Y: 0.58}

	// Fingers curled into the palm
	landmarks.Points[IndexMCP] = Point2D{X: 0.55, Y: 0.64}
	landmarks.Points[IndexPIP] = Point2D{X: 0.55, Y: 0.60}
	landmarks.Points[IndexDIP] = Point2D{X: 0.54, Y: 0.64}
	landmarks.Points[IndexTip] = Point2D{X: 0.53, Y: 0.68}

	landmarks.Points[MiddleMCP] = Point2D{X: 0.51, Y: 0.63}
	landmarks.Points[MiddlePIP] = Point2D{X: 0.51, Y: 0.59}
	landmarks.Points[MiddleDIP] = Point2D{X: 0.50, Y: 0.63}
	landmarks.Points[MiddleTip] = Point2D{X: 0.49, Y: 0.67}

	landmarks.Points[RingMCP] = Point2D{X: 0.47, Y: 0.64}
	landmarks.Points[RingPIP] = Point2D{X: 0.47, Y: 0.60}
	landmarks.Points[RingDIP] = Point2D{X: 0.46, Y: 0.64}
	landmarks.Points[RingTip] = Point2D{X: 0.45, Y: 0.68}

	landmarks.Points[PinkyMCP] = Point2D{X: 0.43, Y: 0.66}
	landmarks.Points[PinkyPIP] = Point2D{X: 0.43, Y: 0.62}
	landmarks.Points[PinkyDIP] = Point2D{X: 0.42, Y: 0.66}
	landmarks.Points[PinkyTip] = Point2D{X: 0.41, Y: 0.70}

	return landmarks
}

// FlatHandLandmarks returns a preset hand shaped like the ASL letter B:
// fingers extended together, thumb folded across the palm.
func FlatHandLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point2D{X: 0.50, Y: 0.80}

	// Thumb folded across the palm
	landmarks.Points[ThumbCMC] = Point2D{X: 0.55, Y: 0.75}
	landmarks.Points[ThumbMCP] = Point2D{X: 0.53, Y: 0.70}
	landmarks.Points[ThumbIP] = Point2D{X: 0.49, Y: 0.68}
	landmarks.Points[ThumbTip] = Point2D{X: 0.45, Y: 0.67}

	// Fingers extended upward
	landmarks.Points[IndexMCP] = Point2D{X: 0.55, Y: 0.64}
	landmarks.Points[IndexPIP] = Point2D{X: 0.56, Y: 0.52}
	landmarks.Points[IndexDIP] = Point2D{X: 0.57, Y: 0.43}
	landmarks.Points[IndexTip] = Point2D{X: 0.57, Y: 0.35}

	landmarks.Points[MiddleMCP] = Point2D{X: 0.51, Y: 0.62}
	landmarks.Points[MiddlePIP] = Point2D{X: 0.51, Y: 0.49}
	landmarks.Points[MiddleDIP] = Point2D{X: 0.51, Y: 0.39}
	landmarks.Points[MiddleTip] = Point2D{X: 0.51, Y: 0.30}

	landmarks.Points[RingMCP] = Point2D{X: 0.47, Y: 0.63}
	landmarks.Points[RingPIP] = Point2D{X: 0.46, Y: 0.51}
	landmarks.Points[RingDIP] = Point2D{X: 0.45, Y: 0.42}
	landmarks.Points[RingTip] = Point2D{X: 0.45, Y: 0.34}

	landmarks.Points[PinkyMCP] = Point2D{X: 0.43, Y: 0.66}
	landmarks.Points[PinkyPIP] = Point2D{X: 0.41, Y: 0.57}
	landmarks.Points[PinkyDIP] = Point2D{X: 0.40, Y: 0.50}
	landmarks.Points[PinkyTip] = Point2D{X: 0.39, Y: 0.44}

	return landmarks
}
