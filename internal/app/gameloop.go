package app

import (
	"time"
)

// TickRate is the simulation frequency in ticks per second.
const TickRate = 60

// runTicks is the fixed-rate simulation loop. Each tick drains the
// letters confirmed since the previous tick and advances the world by
// the measured elapsed time.
func (a *App) runTicks(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			// A long stall (debugger, suspend) would otherwise step
			// the simulation by seconds at once.
			if dt > 0.25 {
				dt = 0.25
			}

			a.dispatcher.Tick(dt)
		}
	}
}
