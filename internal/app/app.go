// Package app wires the recognition pipeline to the game simulation.
package app

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/ayusman/spellsign/internal/capture"
	"github.com/ayusman/spellsign/internal/classifier"
	"github.com/ayusman/spellsign/internal/detector"
	"github.com/ayusman/spellsign/internal/game"
	"github.com/ayusman/spellsign/internal/recognizer"
	"github.com/ayusman/spellsign/internal/store"
)

// Config holds configuration options for the application.
type Config struct {
	Store     *store.Store
	CameraID  int
	AssetDir  string
	WavesPath string
	PlayerPos game.Vec2
}

// App owns the long-lived pieces: camera, detector, classifier,
// recognizer, and the game world. Construction wires everything up;
// Start opens the camera and begins the loops.
type App struct {
	config     Config
	camera     capture.Camera
	detector   detector.Detector
	classifier *classifier.CentroidClassifier
	recognizer *recognizer.Recognizer
	world      *game.World
	dispatcher *game.Dispatcher

	mu      sync.RWMutex
	enabled bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates an App instance. Nothing is opened or spawned here; that
// happens in Start.
func New(config Config) (*App, error) {
	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		classifier: classifier.NewCentroidClassifier(),
		enabled:    true,
	}

	detConfig := detector.DefaultConfig()
	detConfig.AssetDir = config.AssetDir
	if lm, err := detector.NewLandmarkerDetector(detConfig); err == nil {
		a.detector = lm
		log.Println("Using hand landmarker detection")
	} else {
		log.Printf("Hand landmarker not available (%v), running without detection", err)
	}

	a.recognizer = recognizer.New(recognizer.DefaultConfig(), a.camera, a.detector, a.classifier)

	waves, err := game.LoadWaves(config.WavesPath)
	if err != nil {
		return nil, err
	}
	a.world = game.NewWorld(config.PlayerPos, waves)
	a.dispatcher = game.NewDispatcher(a.world, a.recognizer)

	return a, nil
}

// LoadTemplates loads sign templates from the database into the
// classifier, falling back to a bundled JSON model when the database
// holds none.
func (a *App) LoadTemplates() error {
	if a.config.Store != nil {
		if err := a.loadStoreTemplates(); err != nil {
			return err
		}
	}

	if a.classifier.Len() == 0 && a.config.AssetDir != "" {
		path := filepath.Join(a.config.AssetDir, "signs.json")
		templates, err := classifier.LoadModelFile(path)
		if err != nil {
			log.Printf("No sign model at %s: %v", path, err)
			return nil
		}
		for _, t := range templates {
			a.classifier.AddTemplate(t)
		}
		log.Printf("Loaded %d sign templates from %s", len(templates), path)
	}

	return nil
}

func (a *App) loadStoreTemplates() error {
	templates, err := a.config.Store.Templates().List()
	if err != nil {
		return err
	}

	loaded := 0
	for _, t := range templates {
		features, err := a.config.Store.Templates().GetFeatures(t.ID)
		if err != nil {
			log.Printf("Failed to load features for %s: %v", t.Letter, err)
			continue
		}
		if len(features) != detector.FeatureSize {
			log.Printf("Skipping template %s: %d features", t.Letter, len(features))
			continue
		}

		a.classifier.AddTemplate(&classifier.Template{
			ID:        t.ID,
			Letter:    rune(t.Letter[0]),
			Features:  features,
			Tolerance: t.Tolerance,
		})
		loaded++
	}

	log.Printf("Loaded %d sign templates from database", loaded)
	return nil
}

// SetEnabled pauses or resumes letter recognition. The game keeps
// ticking either way; a paused recognizer just confirms nothing.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	a.enabled = enabled
	a.mu.Unlock()

	if enabled {
		a.recognizer.Start()
	} else {
		a.recognizer.Stop()
	}
}

// IsEnabled returns whether recognition is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// Start begins the recognition loop and the game tick loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil // Already running
	}

	if a.enabled {
		a.recognizer.Start()
	}

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runTicks(a.stopCh, a.doneCh)

	log.Println("Game loop started")
	return nil
}

// Stop halts both loops and releases the camera and detector.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh != nil {
		close(a.stopCh)
		<-a.doneCh
		a.stopCh = nil
		a.doneCh = nil
	}
	a.mu.Unlock()

	a.recognizer.Stop()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Game loop stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Detector returns the hand detector, nil when unavailable.
func (a *App) Detector() detector.Detector {
	return a.detector
}

// Classifier returns the letter classifier.
func (a *App) Classifier() *classifier.CentroidClassifier {
	return a.classifier
}

// Recognizer returns the recognizer.
func (a *App) Recognizer() *recognizer.Recognizer {
	return a.recognizer
}

// World returns the game world.
func (a *App) World() *game.World {
	return a.world
}

// Dispatcher returns the letter dispatcher.
func (a *App) Dispatcher() *game.Dispatcher {
	return a.dispatcher
}
