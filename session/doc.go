// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session ties the room primitives together into one explicit
RoomSession per context: locator resolution, identity, roster membership,
transcript, moderation and polls.

# Construction

	s, err := session.Open(st, locatorURL, session.Options{...})

Open resolves (or mints) the room code, loads or creates the profile's
identity, joins the roster and subscribes to changes from other contexts.
Two errors are terminal states, not retryable faults: directory.ErrRoomFull
and directory.ErrBlocked. The presenter replaces the interactive surface
with a static explanation when it sees either.

# Synchronization

Changes made by other contexts arrive on a dispatch goroutine, which
re-reads the affected record from storage and invokes the OnRoster or
OnMessages callback with the fresh snapshot. A session never sees its own
writes as events; after mutating, re-read via Members or Messages.

# Collaborators

Geolocation, sound and QR rendering are pluggable contracts (Geolocator,
SoundPlayer, package share) so the core stays testable without an OS
permission prompt or a speaker.
*/
package session
