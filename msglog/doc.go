// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package msglog persists a room's chat transcript: an append-only sequence
of text messages and location pins, capped at 200 entries with FIFO
eviction.

The log only guarantees order and the cap; rendering is the caller's job.
Location pins are appended by the session layer after geolocation resolves
- a denied or failed acquisition appends nothing.
*/
package msglog
