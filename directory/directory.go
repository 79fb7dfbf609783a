// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package directory

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/danielhkuo/quepasa/palette"
	"github.com/danielhkuo/quepasa/roomcode"
	"github.com/danielhkuo/quepasa/store"
)

var (
	// ErrRoomFull means every palette color is taken. Terminal for the
	// session; there is no waiting list.
	ErrRoomFull = errors.New("room is full")

	// ErrBlocked means the identity's display name is on the room's
	// block-list. Terminal; the caller should clear its local identity so
	// the next visit starts fresh.
	ErrBlocked = errors.New("blocked from this room")
)

// Entry is one participant currently recorded in a room's roster.
// The canonical roster lives in storage; any Entry slice a caller holds is
// a transient copy, refreshed on every read.
type Entry struct {
	DisplayName string        `json:"name"`
	Color       palette.Token `json:"color"`
	Joined      bool          `json:"joined"`
}

// Storage keys, namespaced per room. Everything under RoomPrefix is
// cleared together by Reset.
func rosterKey(room roomcode.Code) string { return RoomPrefix(room) + "roster" }
func ownerKey(room roomcode.Code) string  { return RoomPrefix(room) + "owner" }
func blockKey(room roomcode.Code) string  { return RoomPrefix(room) + "blocked" }

// RoomPrefix is the storage namespace for one room's shared records.
func RoomPrefix(room roomcode.Code) string { return "room:" + string(room) + ":" }

// MessagesKey is the room's message-log record. Defined here so Reset and
// the message log agree on the namespace.
func MessagesKey(room roomcode.Code) string { return RoomPrefix(room) + "messages" }

// Directory is the shared-state layer for room membership: roster,
// ownership and block-list, all keyed by room code. Every operation is a
// read-modify-write against the store with no cross-context transaction;
// two contexts mutating the same room concurrently race and the last
// write wins (see package store).
type Directory struct {
	ctx *store.Context
}

func New(ctx *store.Context) *Directory {
	return &Directory{ctx: ctx}
}

// ListMembers returns the roster in insertion order. Missing or corrupt
// roster records come back as an empty roster, never an error screen.
func (d *Directory) ListMembers(room roomcode.Code) ([]Entry, error) {
	roster, err := store.ReadJSON[[]Entry](d.ctx, rosterKey(room))
	if err != nil {
		return nil, err
	}
	return roster, nil
}

// Join appends identity to the roster. It rejects a block-listed display
// name with ErrBlocked and a full room with ErrRoomFull; neither failure
// mutates anything. The first participant ever recorded becomes the
// room's owner and stays owner until the room's storage is cleared.
//
// Joining again with the same display name refreshes the existing entry
// in place rather than appending a duplicate.
func (d *Directory) Join(room roomcode.Code, e Entry) (Entry, error) {
	blocked, err := d.IsBlocked(room, e.DisplayName)
	if err != nil {
		return Entry{}, err
	}
	if blocked {
		return Entry{}, ErrBlocked
	}

	roster, err := d.ListMembers(room)
	if err != nil {
		return Entry{}, err
	}

	e.Joined = true
	for i, m := range roster {
		if m.DisplayName == e.DisplayName {
			roster[i] = e
			return e, store.WriteJSON(d.ctx, rosterKey(room), roster)
		}
	}

	if len(roster) >= palette.Size() {
		return Entry{}, ErrRoomFull
	}

	roster = append(roster, e)
	if err := store.WriteJSON(d.ctx, rosterKey(room), roster); err != nil {
		return Entry{}, err
	}

	// First participant recorded claims ownership. Ownership does not
	// fail over when the owner leaves; the record outlives them until
	// Reset clears the room.
	if len(roster) == 1 {
		if err := store.WriteJSON(d.ctx, ownerKey(room), e.DisplayName); err != nil {
			return Entry{}, err
		}
	}

	slog.Info("joined room", "room", room, "name", e.DisplayName, "color", e.Color)
	return e, nil
}

// Leave removes the entry with the given display name. Idempotent: leaving
// a room you are not in does nothing.
func (d *Directory) Leave(room roomcode.Code, displayName string) error {
	roster, err := d.ListMembers(room)
	if err != nil {
		return err
	}
	next := slices.DeleteFunc(roster, func(m Entry) bool {
		return m.DisplayName == displayName
	})
	if len(next) == len(roster) {
		return nil
	}
	return store.WriteJSON(d.ctx, rosterKey(room), next)
}

// AssignColor returns the first palette token no roster entry currently
// holds, in palette order. ok is false when the room is full.
func (d *Directory) AssignColor(room roomcode.Code) (palette.Token, bool, error) {
	roster, err := d.ListMembers(room)
	if err != nil {
		return "", false, err
	}
	taken := make(map[palette.Token]bool, len(roster))
	for _, m := range roster {
		taken[m.Color] = true
	}
	for _, t := range palette.Tokens() {
		if !taken[t] {
			return t, true, nil
		}
	}
	return "", false, nil
}

// Kick adds the display name to the room's block-list and removes it from
// the roster. The two writes are sequential and atomic only from this
// context's point of view; another context racing between them can observe
// the block without the removal, or clobber one of the two.
func (d *Directory) Kick(room roomcode.Code, displayName string) error {
	blocklist, err := d.Blocklist(room)
	if err != nil {
		return err
	}
	if !slices.Contains(blocklist, displayName) {
		blocklist = append(blocklist, displayName)
		if err := store.WriteJSON(d.ctx, blockKey(room), blocklist); err != nil {
			return err
		}
	}
	if err := d.Leave(room, displayName); err != nil {
		return err
	}
	slog.Info("kicked from room", "room", room, "name", displayName)
	return nil
}

// Owner returns the recorded owner's display name. ok is false for a room
// with no owner record yet.
func (d *Directory) Owner(room roomcode.Code) (string, bool, error) {
	name, err := store.ReadJSON[string](d.ctx, ownerKey(room))
	if err != nil {
		return "", false, err
	}
	return name, name != "", nil
}

// IsOwner reports whether displayName matches the recorded owner.
func (d *Directory) IsOwner(room roomcode.Code, displayName string) (bool, error) {
	owner, ok, err := d.Owner(room)
	if err != nil {
		return false, err
	}
	return ok && owner == displayName, nil
}

// Blocklist returns the display names barred from rejoining the room.
func (d *Directory) Blocklist(room roomcode.Code) ([]string, error) {
	return store.ReadJSON[[]string](d.ctx, blockKey(room))
}

// IsBlocked reports whether displayName is on the room's block-list.
func (d *Directory) IsBlocked(room roomcode.Code, displayName string) (bool, error) {
	blocklist, err := d.Blocklist(room)
	if err != nil {
		return false, err
	}
	return slices.Contains(blocklist, displayName), nil
}

// Reset clears every shared record for the room: roster, owner,
// block-list and message log. This is the only path that lifts a block
// and the only path that vacates ownership.
func (d *Directory) Reset(room roomcode.Code) error {
	return d.ctx.DeletePrefix(RoomPrefix(room))
}
