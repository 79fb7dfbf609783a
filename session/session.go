// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/quepasa/directory"
	"github.com/danielhkuo/quepasa/identity"
	"github.com/danielhkuo/quepasa/msglog"
	"github.com/danielhkuo/quepasa/poll"
	"github.com/danielhkuo/quepasa/roomcode"
	"github.com/danielhkuo/quepasa/store"
)

var (
	// ErrNotOwner guards the moderation and poll-start operations.
	ErrNotOwner = errors.New("only the room owner can do that")

	// ErrPinPending means a location acquisition is already in flight;
	// the trigger control should be disabled until it resolves.
	ErrPinPending = errors.New("a location pin is already pending")
)

// Options configures a session. The zero value works: no sounds, no
// geolocation (PinLocation fails with ErrGeoUnavailable), no callbacks.
type Options struct {
	// Profile labels the local identity namespace. Sessions sharing a
	// profile are the same participant (a reloaded or second tab);
	// distinct profiles are distinct participants. Empty means
	// identity.DefaultProfile.
	Profile string

	Geolocator Geolocator
	Sounds     SoundPlayer

	// PollHoldDelay is how long a completed tally stays visible before
	// the poll auto-resets. Zero selects poll.DefaultHoldDelay.
	PollHoldDelay time.Duration

	// Re-render callbacks, invoked from the session's dispatch goroutine
	// whenever another context changes the corresponding record. The
	// slices passed are fresh reads of storage, never deltas.
	OnRoster   func([]directory.Entry)
	OnMessages func([]msglog.Message)

	// OnKicked fires once if another context block-lists this session's
	// identity. By then the local identity record is already cleared, so
	// the next visit to the room starts over with a fresh persona.
	OnKicked func()
}

// Session is one context's live view of a room: identity, roster,
// transcript and poll, all re-derived from the shared store. Construct it
// with Open and pass it around explicitly - nothing in this package reads
// ambient globals, so tests can run many sessions against one store.
type Session struct {
	ctx     *store.Context
	code    roomcode.Code
	profile string
	dir     *directory.Directory
	log     *msglog.Log
	poll    *poll.Session
	geo     Geolocator
	sounds  SoundPlayer
	opts    Options

	mu         sync.Mutex
	id         identity.Identity
	pinPending bool
	kicked     bool

	done chan struct{}
}

// Open resolves the room code from the locator (rewriting it in place if
// absent or invalid), loads or mints the profile's identity for that
// room, joins the roster and starts listening for changes from other
// contexts.
//
// Terminal failures: directory.ErrRoomFull when every seat is taken, and
// directory.ErrBlocked when the identity is on the block-list - in the
// blocked case the local identity is cleared first, so the next visit
// arrives as somebody new.
func Open(st *store.Store, locator *url.URL, opts Options) (*Session, error) {
	if opts.Geolocator == nil {
		opts.Geolocator = unavailableGeo{}
	}
	if opts.Sounds == nil {
		opts.Sounds = NopSounds{}
	}

	ctx := st.NewContext()
	code, rewritten := roomcode.ResolveFromLocator(locator)
	if rewritten {
		slog.Info("minted fresh room code", "room", code)
	}

	dir := directory.New(ctx)
	id, err := identity.GetOrCreate(ctx, dir, opts.Profile, code)
	if err != nil {
		ctx.Close()
		return nil, err
	}

	if _, err := dir.Join(code, directory.Entry{DisplayName: id.DisplayName, Color: id.Color}); err != nil {
		if errors.Is(err, directory.ErrBlocked) {
			if clearErr := identity.Clear(ctx, opts.Profile, code); clearErr != nil {
				slog.Warn("failed to clear blocked identity", "room", code, "error", clearErr)
			}
		}
		ctx.Close()
		return nil, err
	}

	s := &Session{
		ctx:     ctx,
		code:    code,
		profile: opts.Profile,
		dir:     dir,
		log:     msglog.New(ctx),
		poll:    poll.New(opts.PollHoldDelay),
		geo:     opts.Geolocator,
		sounds:  opts.Sounds,
		opts:    opts,
		id:      id,
		done:    make(chan struct{}),
	}
	s.sounds.Play(CueJoin)

	go s.dispatch()
	return s, nil
}

// Code returns the resolved room code.
func (s *Session) Code() roomcode.Code {
	return s.code
}

// Identity returns the session's persona.
func (s *Session) Identity() identity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// IsOwner reports whether this session's identity is the recorded owner.
func (s *Session) IsOwner() (bool, error) {
	return s.dir.IsOwner(s.code, s.Identity().DisplayName)
}

// Owner returns the recorded owner's display name; ok is false when the
// room has no owner record.
func (s *Session) Owner() (string, bool, error) {
	return s.dir.Owner(s.code)
}

// Members returns a fresh read of the roster, insertion order.
func (s *Session) Members() ([]directory.Entry, error) {
	return s.dir.ListMembers(s.code)
}

// Messages returns a fresh read of the transcript, oldest first.
func (s *Session) Messages() ([]msglog.Message, error) {
	return s.log.LoadAll(s.code)
}

// SendText appends a text message to the room's log.
func (s *Session) SendText(body string) error {
	id := s.Identity()
	if err := s.log.Append(s.code, msglog.NewText(id.DisplayName, id.Color, body)); err != nil {
		return err
	}
	s.sounds.Play(CueClick)
	return nil
}

// PinPending reports whether a location acquisition is in flight; the UI
// disables the pin control while true.
func (s *Session) PinPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pinPending
}

// PinLocation acquires the current position and appends a location pin.
// Acquisition can take seconds; it blocks the calling goroutine only, and
// honors ctx for cancellation. On denial or failure nothing is appended
// and the error is the caller's to present as a dismissible notice.
func (s *Session) PinLocation(ctx context.Context) error {
	s.mu.Lock()
	if s.pinPending {
		s.mu.Unlock()
		return ErrPinPending
	}
	s.pinPending = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pinPending = false
		s.mu.Unlock()
	}()

	coords, err := s.geo.Current(ctx)
	if err != nil {
		return err
	}
	id := s.Identity()
	return s.log.Append(s.code, msglog.NewLocation(id.DisplayName, id.Color, coords.Lat, coords.Lng))
}

// Kick block-lists target and removes it from the roster. Owner only.
// Kicking yourself is allowed: your local identity is cleared and you
// rejoin immediately under a fresh persona (the old, now-blocked name
// stays on the block-list).
func (s *Session) Kick(target string) error {
	isOwner, err := s.IsOwner()
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrNotOwner
	}
	if err := s.dir.Kick(s.code, target); err != nil {
		return err
	}
	s.sounds.Play(CueKick)

	if target == s.Identity().DisplayName {
		return s.rejoinFresh()
	}
	return nil
}

// rejoinFresh clears the local identity and joins again as somebody new.
// Used on self-kick; the blocked old name stays blocked.
func (s *Session) rejoinFresh() error {
	if err := identity.Clear(s.ctx, s.profile, s.code); err != nil {
		return err
	}
	id, err := identity.GetOrCreate(s.ctx, s.dir, s.profile, s.code)
	if err != nil {
		return err
	}
	if _, err := s.dir.Join(s.code, directory.Entry{DisplayName: id.DisplayName, Color: id.Color}); err != nil {
		return err
	}
	s.mu.Lock()
	s.id = id
	s.mu.Unlock()
	return nil
}

// StartPoll begins a yes/no vote over the roster. Owner only; fails with
// poll.ErrAlreadyActive if one is running.
func (s *Session) StartPoll() error {
	isOwner, err := s.IsOwner()
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrNotOwner
	}
	return s.poll.Start()
}

// Vote records this session's choice in the running poll.
func (s *Session) Vote(choice poll.Choice) error {
	roster, err := s.Members()
	if err != nil {
		return err
	}
	return s.poll.Vote(s.Identity().Color, choice, len(roster))
}

// PollActive reports whether a poll is running in this context.
func (s *Session) PollActive() bool {
	return s.poll.Active()
}

// PollTally returns the current counts with voter names mapped through a
// fresh roster read.
func (s *Session) PollTally() (poll.Tally, error) {
	roster, err := s.Members()
	if err != nil {
		return poll.Tally{}, err
	}
	return s.poll.Tally(roster), nil
}

// Poll exposes the underlying poll session, mainly so callers can hook
// its OnReset callback.
func (s *Session) Poll() *poll.Session {
	return s.poll
}

// Leave removes this session from the roster, forgets the local identity
// and closes the session. The room's shared records stay behind for the
// remaining members.
func (s *Session) Leave() error {
	id := s.Identity()
	if err := s.dir.Leave(s.code, id.DisplayName); err != nil {
		return err
	}
	if err := identity.Clear(s.ctx, s.profile, s.code); err != nil {
		return err
	}
	s.Close()
	return nil
}

// ResetRoom clears every shared record for the room - roster, owner,
// block-list, transcript - plus the local identity, then closes the
// session. This is the "new room" storage-clear path, and the only way a
// block-list entry is ever lifted.
func (s *Session) ResetRoom() error {
	if err := s.dir.Reset(s.code); err != nil {
		return err
	}
	if err := identity.Clear(s.ctx, s.profile, s.code); err != nil {
		return err
	}
	s.Close()
	return nil
}

// Close stops the dispatch loop, cancels any poll timer and releases the
// store context. Idempotent. Every exit path lands here so no timer or
// goroutine outlives the session.
func (s *Session) Close() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.done)
	s.poll.Reset()
	s.ctx.Close()
}

// dispatch consumes change events from other contexts and re-derives the
// affected view with a fresh storage read before invoking the matching
// callback. It exits when the context's event channel closes.
func (s *Session) dispatch() {
	prefix := directory.RoomPrefix(s.code)
	msgKey := directory.MessagesKey(s.code)

	for ev := range s.ctx.Events() {
		if !strings.HasPrefix(ev.Key, prefix) {
			continue
		}
		if ev.Key == msgKey {
			if s.opts.OnMessages != nil {
				msgs, err := s.Messages()
				if err != nil {
					slog.Warn("failed to reload messages", "room", s.code, "error", err)
					continue
				}
				s.opts.OnMessages(msgs)
			}
			continue
		}

		// Roster, owner or block-list changed. Check for our own
		// eviction first, then re-render.
		s.checkKicked()
		if s.opts.OnRoster != nil {
			roster, err := s.Members()
			if err != nil {
				slog.Warn("failed to reload roster", "room", s.code, "error", err)
				continue
			}
			s.opts.OnRoster(roster)
		}
	}
}

// checkKicked clears the local identity the moment another context
// block-lists us, so the next visit starts fresh. Fires OnKicked once.
func (s *Session) checkKicked() {
	s.mu.Lock()
	already := s.kicked
	name := s.id.DisplayName
	s.mu.Unlock()
	if already {
		return
	}

	blocked, err := s.dir.IsBlocked(s.code, name)
	if err != nil || !blocked {
		return
	}

	s.mu.Lock()
	s.kicked = true
	s.mu.Unlock()

	if err := identity.Clear(s.ctx, s.profile, s.code); err != nil {
		slog.Warn("failed to clear identity after kick", "room", s.code, "error", err)
	}
	s.sounds.Play(CueKick)
	if s.opts.OnKicked != nil {
		s.opts.OnKicked()
	}
}

// Kicked reports whether this session was evicted by another context.
func (s *Session) Kicked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kicked
}

// unavailableGeo is the default Geolocator: acquisition always fails.
type unavailableGeo struct{}

func (unavailableGeo) Current(context.Context) (Coords, error) {
	return Coords{}, ErrGeoUnavailable
}
