// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity derives and caches the anonymous per-room persona for the
current profile: a generated display name plus an assigned palette color.

The record is scoped per profile per room and is not part of a room's
shared state. Contexts that share a profile share the persona - a second
context on the same profile is the same participant, like a second tab of
the same browser - while distinct profiles are distinct participants even
over the same store. It survives re-opens until Clear removes it - which
happens when the user leaves the room or gets kicked - so a visitor keeps
the same name and color across sessions of the same room.
*/
package identity
