// Package tray provides the system tray interface for Spellsign.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray is the system tray menu. It toggles recognition, shows the last
// confirmed letter, and opens the preview page.
type Tray struct {
	onToggle  func(enabled bool)
	onPreview func()
	onQuit    func()
	enabled   bool
	mu        sync.RWMutex

	// Menu items stored for later updates
	menuToggle     *systray.MenuItem
	menuLastLetter *systray.MenuItem
}

// New creates a new Tray instance with recognition enabled by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback called when recognition is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnPreview sets the callback called when the preview menu item is clicked.
func (t *Tray) OnPreview(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onPreview = fn
}

// OnQuit sets the callback called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Spellsign")
	systray.SetTooltip("Spellsign Letter Recognition")

	t.menuToggle = systray.AddMenuItem("● Recognition On", "Toggle letter recognition")
	systray.AddSeparator()

	t.menuLastLetter = systray.AddMenuItem("Last: none", "Last confirmed letter")
	t.menuLastLetter.Disable()
	systray.AddSeparator()

	menuPreview := systray.AddMenuItem("Open Preview...", "Open camera preview in browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Spellsign")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuPreview.ClickedCh:
				t.handlePreview()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Recognition On")
	} else {
		t.menuToggle.SetTitle("○ Recognition Off")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handlePreview handles the preview menu item click.
func (t *Tray) handlePreview() {
	t.mu.RLock()
	callback := t.onPreview
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetLastLetter updates the last confirmed letter shown in the menu.
func (t *Tray) SetLastLetter(letter rune) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastLetter != nil {
		if letter == 0 {
			t.menuLastLetter.SetTitle("Last: none")
		} else {
			t.menuLastLetter.SetTitle("Last: " + string(letter))
		}
	}
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
