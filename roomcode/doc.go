// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roomcode generates and validates room codes and resolves them from
shareable locators.

# Schemes

The canonical scheme is six digits plus one uppercase letter (26,000,000
codes). An alternate six-alphanumeric scheme exists for compatibility; a
room keeps whichever scheme minted its code for as long as its stored data
lives.

# Locator resolution

ResolveFromLocator is the load-time entry point: it reads room=<code> from
the URL, and when the value is missing or malformed it silently generates a
fresh code and rewrites the query in place. An invalid code is never
surfaced as an error; it just means a new room. Resolution is idempotent,
so calling it again on the rewritten locator returns the same code with no
second rewrite.

Explicit room switches go through SwitchLocator instead, which returns a
new locator for the caller to navigate to.
*/
package roomcode
