// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package share turns a room code into things people can actually share: the
locator URL itself, and QR renderings of it (PNG for a flash overlay,
half-block text for a terminal).
*/
package share
