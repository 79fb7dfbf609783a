// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"errors"
	"sync"
	"time"

	"github.com/danielhkuo/quepasa/directory"
	"github.com/danielhkuo/quepasa/palette"
)

var (
	ErrAlreadyActive = errors.New("a poll is already running")
	ErrNotActive     = errors.New("no poll is running")
)

// Choice is a yes/no vote.
type Choice string

const (
	Yes Choice = "yes"
	No  Choice = "no"
)

// DefaultHoldDelay is how long a completed tally stays on screen before
// the poll auto-resets to idle.
const DefaultHoldDelay = 4 * time.Second

// Tally is a snapshot of the vote counts. Voters lists the display names
// of everyone who voted, mapped through the current roster; a voter whose
// roster entry vanished mid-poll is dropped from Voters but still counted
// in YesCount/NoCount.
type Tally struct {
	YesCount int
	NoCount  int
	Voters   []string
}

// Session is a host-initiated yes/no vote over the current roster.
// It is ephemeral and local to one context - poll state is deliberately
// NOT written to the shared store, so two open contexts can disagree
// about a running poll. That weak-consistency point is part of the
// design, not a defect to patch.
//
// Lifecycle: Idle → Active on Start, back to Idle either explicitly via
// Reset or automatically once every roster member has voted, after the
// hold delay elapses. Completion is re-checked synchronously on every
// Vote; there is no polling timer to tear down, only the single
// hold-delay timer, which Reset always cancels.
type Session struct {
	mu         sync.Mutex
	active     bool
	votes      map[palette.Token]Choice
	holdDelay  time.Duration
	resetTimer *time.Timer

	// OnReset, when set, runs after an auto-reset fires so the owner of
	// the session can re-render. Called without the lock held.
	OnReset func()
}

// New returns an idle session. holdDelay <= 0 selects DefaultHoldDelay.
func New(holdDelay time.Duration) *Session {
	if holdDelay <= 0 {
		holdDelay = DefaultHoldDelay
	}
	return &Session{holdDelay: holdDelay}
}

// Start moves the session from Idle to Active with an empty vote map.
// The ownership gate lives in the session layer; Start itself only
// enforces the state machine.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return ErrAlreadyActive
	}
	s.active = true
	s.votes = make(map[palette.Token]Choice)
	return nil
}

// Active reports whether a poll is running.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Vote records a choice for the given color token. Re-voting is allowed;
// the last vote per token wins, so nobody is double counted. rosterSize
// is the current roster length: when every distinct voter has spoken and
// the roster is non-empty, an auto-reset is scheduled after the hold
// delay so the tally stays visible for a moment.
func (s *Session) Vote(color palette.Token, choice Choice, rosterSize int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return ErrNotActive
	}
	s.votes[color] = choice

	if rosterSize > 0 && len(s.votes) >= rosterSize && s.resetTimer == nil {
		s.resetTimer = time.AfterFunc(s.holdDelay, func() {
			s.Reset()
			if s.OnReset != nil {
				s.OnReset()
			}
		})
	}
	return nil
}

// Tally counts the votes and maps voters back to display names through
// the roster snapshot the caller provides.
func (s *Session) Tally(roster []directory.Entry) Tally {
	s.mu.Lock()
	defer s.mu.Unlock()

	nameByColor := make(map[palette.Token]string, len(roster))
	for _, m := range roster {
		nameByColor[m.Color] = m.DisplayName
	}

	var t Tally
	for color, choice := range s.votes {
		if choice == Yes {
			t.YesCount++
		} else {
			t.NoCount++
		}
		if name, ok := nameByColor[color]; ok {
			t.Voters = append(t.Voters, name)
		}
	}
	return t
}

// Reset clears the votes, cancels any pending auto-reset and returns the
// session to Idle. Safe on every exit path: explicit reset, auto-reset,
// and session teardown all land here, so no timer outlives the poll.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	s.active = false
	s.votes = nil
}
