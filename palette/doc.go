// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package palette defines the closed set of color tokens used to identify
room participants.

A token is both a display color and a seat: the roster assigns each joining
participant the first token no current member holds, and rejects joins once
every token is taken. Palette size is therefore the room capacity.

	for _, t := range palette.Tokens() {
		fmt.Println(t, palette.Hex(t))
	}

Tokens are persisted as their string names, so renaming a token is a
breaking change for existing room data.
*/
package palette
