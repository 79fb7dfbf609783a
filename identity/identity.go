// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"math/rand"

	"github.com/danielhkuo/quepasa/directory"
	"github.com/danielhkuo/quepasa/palette"
	"github.com/danielhkuo/quepasa/roomcode"
	"github.com/danielhkuo/quepasa/store"
)

// Identity is the anonymous persona a profile uses inside one room:
// a generated display name plus an assigned palette color. It is minted
// once per room and reused on every revisit until explicitly cleared
// (leave, kick), at which point the next visit derives a fresh one.
type Identity struct {
	DisplayName string        `json:"name"`
	Color       palette.Token `json:"color"`
}

// DefaultProfile is the profile label used when the caller does not name
// one. Identities are scoped per profile per room: contexts sharing a
// profile share a persona (the reloaded-tab case), distinct profiles are
// distinct participants even over the same store.
const DefaultProfile = "default"

func key(profile string, room roomcode.Code) string {
	if profile == "" {
		profile = DefaultProfile
	}
	return "identity:" + profile + ":" + string(room)
}

var adjectives = []string{
	"brave", "calm", "clever", "curious", "eager", "gentle", "happy",
	"jolly", "lucky", "mellow", "nimble", "quiet", "rapid", "sly",
	"sunny", "witty",
}

var animals = []string{
	"otter", "lynx", "heron", "badger", "finch", "marmot", "newt",
	"puffin", "stoat", "tapir", "vole", "wren", "ibis", "koala",
	"gecko", "yak",
}

// GetOrCreate returns the profile's identity for the room, minting and
// persisting one if none is stored. Minting asks the directory for the
// first free color; directory.ErrRoomFull comes back unchanged when every
// seat is taken.
//
// The stored identity is stable across re-opens of the same profile. A
// corrupt record decodes to the zero Identity and is re-minted.
func GetOrCreate(ctx *store.Context, dir *directory.Directory, profile string, room roomcode.Code) (Identity, error) {
	id, err := store.ReadJSON[Identity](ctx, key(profile, room))
	if err != nil {
		return Identity{}, err
	}
	if id.DisplayName != "" && palette.Valid(id.Color) {
		return id, nil
	}

	color, ok, err := dir.AssignColor(room)
	if err != nil {
		return Identity{}, err
	}
	if !ok {
		return Identity{}, directory.ErrRoomFull
	}

	id = Identity{
		DisplayName: newDisplayName(),
		Color:       color,
	}
	if err := store.WriteJSON(ctx, key(profile, room), id); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Clear forgets the profile's identity for the room. Called on leave and
// on kick so the next visit starts over with a fresh persona.
func Clear(ctx *store.Context, profile string, room roomcode.Code) error {
	return ctx.Delete(key(profile, room))
}

// newDisplayName builds an adjective-animal name like "sly-heron-42".
// The numeric suffix keeps two profiles from colliding on the same pair;
// uniqueness inside a room is really enforced by the color seat, so a
// rare name collision only looks odd, it does not break anything.
func newDisplayName() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	animal := animals[rand.Intn(len(animals))]
	return adj + "-" + animal + "-" + twoDigits()
}

func twoDigits() string {
	n := rand.Intn(90) + 10
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
