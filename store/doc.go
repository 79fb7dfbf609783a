// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the profile-local key-value layer that all room
state lives in, and the change notifications that keep multiple contexts
loosely in sync.

# Model

A Store wraps one database (sqlite by default, postgres via the same
DatabaseType switch as everything else) holding a single kv table. A
Context is one independent view onto that table - the moral equivalent of
a browser tab. Contexts share no memory; the table is the only channel
between them.

	s, err := store.Open("sqlite", "quepasa.db")
	...
	a := s.NewContext()
	b := s.NewContext()

When a context writes a key, every OTHER context receives an Event on its
Events channel. The writer never receives its own event; if it wants to
observe the new state it re-reads, like anyone else.

# Consistency

Last write wins, per key. A read-modify-write performed by two contexts at
once can lose one side's update: A reads the roster, B reads the roster,
A writes, B writes, and A's entry is gone. There is no lock, version
vector or merge; the design tolerates the race rather than hiding it, and
the tests pin the behavior down. Consumers of events must re-derive state
from a fresh read - an event is a doorbell, not a delta.
*/
package store
