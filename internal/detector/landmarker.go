package detector

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"

	"gocv.io/x/gocv"
)

const (
	landmarkerModelFile  = "hand_landmarker.task"
	landmarkerScriptFile = "landmarker_service.py"
)

// LandmarkerDetector implements Detector using a Python hand-landmarker
// subprocess. Frames are shipped as length-prefixed JPEG; landmarks come
// back as one JSON line per frame.
type LandmarkerDetector struct {
	config     Config
	modelPath  string
	scriptPath string
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stdout     *bufio.Reader
	mu         sync.Mutex
	started    bool
}

// NewLandmarkerDetector creates a new landmarker detector. It verifies the
// model and service script exist up front so a missing install surfaces as
// a constructor error instead of a mid-session failure. The subprocess
// itself is started lazily on first detection.
func NewLandmarkerDetector(config Config) (*LandmarkerDetector, error) {
	modelPath := findAsset(config.AssetDir, landmarkerModelFile)
	if modelPath == "" {
		return nil, fmt.Errorf("hand landmarker model not found (%s)", landmarkerModelFile)
	}

	scriptPath := findAsset(config.AssetDir, landmarkerScriptFile)
	if scriptPath == "" {
		return nil, fmt.Errorf("landmarker service not found (%s)", landmarkerScriptFile)
	}

	if config.MaxHands <= 0 {
		config.MaxHands = 1
	}

	return &LandmarkerDetector{
		config:     config,
		modelPath:  modelPath,
		scriptPath: scriptPath,
	}, nil
}

// Detect analyzes a frame and returns detected hand landmarks.
// Hands scoring below MinConfidence are dropped.
func (d *LandmarkerDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ensureStarted(); err != nil {
		return nil, err
	}

	// Encode frame as JPEG
	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := buf.GetBytes()

	// Write length (4 bytes big-endian) + data
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))

	if _, err := d.stdin.Write(length); err != nil {
		return nil, fmt.Errorf("write length: %w", err)
	}
	if _, err := d.stdin.Write(data); err != nil {
		return nil, fmt.Errorf("write data: %w", err)
	}

	// Read JSON response
	line, err := d.stdout.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var response struct {
		Hands []HandLandmarks `json:"hands"`
	}
	if err := json.Unmarshal([]byte(line), &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	result := make([]HandLandmarks, 0, len(response.Hands))
	for _, h := range response.Hands {
		if h.Score < d.config.MinConfidence {
			continue
		}
		result = append(result, h)
	}

	return result, nil
}

// Close shuts down the subprocess.
func (d *LandmarkerDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started {
		return nil
	}

	if d.stdin != nil {
		d.stdin.Close()
	}

	err := d.cmd.Wait()
	d.started = false
	d.cmd = nil
	d.stdin = nil
	d.stdout = nil

	return err
}

func (d *LandmarkerDetector) ensureStarted() error {
	if d.started {
		return nil
	}

	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	d.cmd = exec.Command(pythonPath, d.scriptPath,
		"--model", d.modelPath,
		"--max-hands", strconv.Itoa(d.config.MaxHands),
		"--min-confidence", strconv.FormatFloat(d.config.MinConfidence, 'f', -1, 64),
	)

	stdin, err := d.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := d.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	// Capture stderr for debugging
	d.cmd.Stderr = os.Stderr

	if err := d.cmd.Start(); err != nil {
		return fmt.Errorf("start landmarker service: %w", err)
	}

	d.stdin = stdin
	d.stdout = bufio.NewReader(stdout)
	d.started = true

	return nil
}

// findAsset locates a vision asset, checking the configured asset dir
// first, then the usual install locations.
func findAsset(assetDir, name string) string {
	var candidates []string
	if assetDir != "" {
		candidates = append(candidates, filepath.Join(assetDir, name))
	}

	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates = append(candidates,
		filepath.Join("vision", name),
		filepath.Join("../vision", name),
		filepath.Join(execDir, "vision", name),
		filepath.Join(os.Getenv("HOME"), ".spellsign/vision", name),
	)

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".spellsign/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}
