package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ayusman/spellsign/internal/app"
	"github.com/ayusman/spellsign/internal/game"
	"github.com/ayusman/spellsign/internal/server"
	"github.com/ayusman/spellsign/internal/store"
	"github.com/ayusman/spellsign/internal/tray"
)

func main() {
	cameraID := flag.Int("camera", 0, "camera device ID")
	addr := flag.String("addr", ":8080", "preview server address")
	flag.Parse()

	fmt.Println("Spellsign - Sign Language Spellcasting")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".spellsign")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "spellsign.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	a, err := app.New(app.Config{
		Store:     st,
		CameraID:  *cameraID,
		AssetDir:  filepath.Join(dataDir, "vision"),
		WavesPath: findDataFile("waves.json", dataDir),
		PlayerPos: game.Vec2{X: 640, Y: 360},
	})
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := a.LoadTemplates(); err != nil {
		log.Fatalf("Failed to load sign templates: %v", err)
	}

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnPreview(func() {
		openBrowser("http://localhost" + *addr)
	})
	t.OnQuit(func() {
		a.Stop()
	})

	// Registered before Start so the tick loop never races the wiring
	a.Dispatcher().OnLetter(func(letter rune) {
		t.SetLastLetter(letter)
	})

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	srv := server.New(server.Config{
		StaticDir:  findDataFile("web", dataDir),
		Store:      st,
		Camera:     a.Camera(),
		Recognizer: a.Recognizer(),
	})
	go func() {
		fmt.Printf("Preview server on %s\n", *addr)
		if err := srv.ListenAndServe(*addr); err != nil {
			log.Printf("Preview server failed: %v", err)
		}
	}()

	// Blocks until Quit is clicked
	t.Run()
}

// findDataFile looks for a data file or directory next to the binary,
// in the working directory, and in the user data directory. Returns the
// first match, or the data-dir path so callers get a sensible default
// location.
func findDataFile(name, dataDir string) string {
	candidates := []string{
		filepath.Join("data", name),
		name,
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "data", name))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			abs, err := filepath.Abs(p)
			if err == nil {
				return abs
			}
			return p
		}
	}
	return filepath.Join(dataDir, name)
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
