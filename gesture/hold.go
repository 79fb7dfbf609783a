// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gesture

import (
	"sync"
	"time"
)

// Hold models a press-and-hold trigger: Begin starts the countdown and
// the action fires only if the press survives the full duration. Cancel
// at any earlier point fully resets progress - the action does not fire,
// no timer is left running, and the Hold is ready for the next press.
type Hold struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// Begin starts a hold. If a hold is already in progress it is restarted
// from zero. onComplete runs once, on its own goroutine, only if the hold
// runs to completion. The generation counter keeps a stale timer that
// races Stop from firing against a newer press.
func (h *Hold) Begin(d time.Duration, onComplete func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.timer != nil {
		h.timer.Stop()
	}
	h.gen++
	g := h.gen
	h.timer = time.AfterFunc(d, func() {
		h.mu.Lock()
		if h.gen != g {
			h.mu.Unlock()
			return
		}
		h.timer = nil
		h.mu.Unlock()
		onComplete()
	})
}

// Cancel abandons the in-progress hold, if any. Idempotent.
func (h *Hold) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gen++
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}

// Holding reports whether a press is currently in progress.
func (h *Hold) Holding() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.timer != nil
}
