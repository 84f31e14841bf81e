package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestMockCamera_ReadNotOpen(t *testing.T) {
	cam := NewMockCamera(nil, false)

	if _, err := cam.ReadFrame(); err != ErrCameraNotOpen {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestMockCamera_Playback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame, &frame}, false)
	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		f, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() %d error = %v", i, err)
		}
		f.Close()
	}

	// Non-looping playback runs out after the last frame
	if _, err := cam.ReadFrame(); err == nil {
		t.Error("expected error after playback exhausted")
	}
}

func TestMockCamera_FailAfterAndReopen(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame}, true)
	cam.FailAfter(1)
	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	f, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("first ReadFrame() error = %v", err)
	}
	f.Close()

	// Injected failure persists until Reopen
	if _, err := cam.ReadFrame(); err == nil {
		t.Fatal("expected injected read failure")
	}
	if _, err := cam.ReadFrame(); err == nil {
		t.Fatal("failure should persist across reads")
	}

	if err := cam.Reopen(); err != nil {
		t.Fatalf("Reopen() error = %v", err)
	}
	if cam.Reopens() != 1 {
		t.Errorf("Reopens() = %d, want 1", cam.Reopens())
	}

	f, err = cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() after Reopen error = %v", err)
	}
	f.Close()
}
