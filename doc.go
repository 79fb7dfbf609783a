// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the quepasa CLI: a local-first, room-based chat and
poll toy.

Rooms are identified by short shareable codes embedded in a URL. All state
- roster, messages, block-list - lives in a profile-local store (sqlite by
default), and every open context of the same profile converges on it
through change notifications. There is no server and no network protocol.

# Starting

	go run . -u "https://quepasa.app/?room=493817Q"

With no locator a fresh room code is minted and printed. Plain input lines
send chat messages; commands:

	/who       show the roster
	/code      show the room code and a QR of the share URL
	/log       show the transcript
	/pin       press-and-hold to drop a location pin (/release cancels)
	/poll      start a yes/no poll (host only)
	/yes /no   vote
	/kick NAME block and remove a member (host only)
	/leave     leave the room
	/quit      exit, staying on the roster

# Architecture

  - roomcode:  code generation, validation, locator resolution
  - palette:   the closed color-token set (colors are seats)
  - store:     profile-local KV records plus cross-context change events
  - directory: roster, ownership, block-list
  - msglog:    capped append-only transcript
  - poll:      ephemeral host-run yes/no votes
  - session:   one context's explicit RoomSession over all of the above
  - gesture, share, render: press-and-hold, QR/locator, terminal output
  - cliparse:  configuration parsing

See package documentation for each component.
*/
package main
