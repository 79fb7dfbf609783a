// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll runs the host-initiated yes/no vote over a room's roster.

A poll is ephemeral and context-local: it never touches the shared store,
so other open contexts do not see it. Votes are keyed by color token, and
the last vote per token wins. Completion is detected synchronously on
every Vote call - once every current roster member has voted, the tally
holds on screen for a fixed delay and the poll resets itself to idle.

The only timer involved is that hold-delay timer, and Reset cancels it on
every path out of a poll.
*/
package poll
