// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package directory is the shared-state layer for room membership: who is in
a room, who owns it, and who is barred from rejoining.

# State

A room moves Empty → Populated → Full as members join and leave. The first
participant ever recorded becomes the owner and keeps the role until the
room's storage is cleared with Reset - ownership deliberately does not
fail over when the owner leaves. Capacity is the palette size, because a
color token is also a seat.

# Failure semantics

Join fails loud: ErrBlocked and ErrRoomFull are terminal for the session
and never mutate the roster. Reads fail silent: a missing or corrupt
roster record decodes to an empty roster, so bad profile data shows up as
an empty-looking room rather than an error.

Kick is two sequential writes (block-list, then roster). They are atomic
only within the calling context; see package store for the cross-context
race this design accepts.
*/
package directory
