// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render formats roster, transcript and poll views for the terminal
presenter. Color tokens map to ANSI escapes, suppressed automatically when
stdout is not a terminal, and timestamps render as relative phrases
("3 minutes ago").
*/
package render
