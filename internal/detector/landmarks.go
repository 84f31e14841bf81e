// Package detector provides hand landmark extraction for sign recognition.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// FeatureSize is the length of the classifier feature vector:
// an (x, y) pair per landmark.
const FeatureSize = NumLandmarks * 2

// Point2D represents a landmark position in normalized image coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HandLandmarks represents the 21 hand landmarks of one detected hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point2D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Features flattens the landmarks into the classifier feature vector:
// each point's (x, y) relative to the wrist, in landmark order, as
// [dx0, dy0, dx1, dy1, ..., dx20, dy20].
func (h *HandLandmarks) Features() []float64 {
	features := make([]float64, 0, FeatureSize)
	wrist := h.Points[Wrist]
	for i := 0; i < NumLandmarks; i++ {
		features = append(features, h.Points[i].X-wrist.X, h.Points[i].Y-wrist.Y)
	}
	return features
}
