// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gesture implements the press-and-hold trigger used for actions
that should not fire on a stray tap, like pinning your location after a
ten-second hold.

The contract is all-or-nothing: release before the duration elapses and
nothing happened - no partial side effect, no leaked timer.
*/
package gesture
