// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roomcode

import (
	"math/rand"
	"net/url"
	"regexp"
)

// Code is a shareable room token. The canonical scheme is six ASCII digits
// followed by one uppercase letter ("493817Q"), 26 million possible codes.
// Collisions only cause two groups to share a room, so a fast pseudo-random
// source is enough; this is not a security token.
type Code = string

// Param is the locator query parameter carrying the room code.
const Param = "room"

var (
	canonicalRe = regexp.MustCompile(`^[0-9]{6}[A-Z]$`)
	altRe       = regexp.MustCompile(`^[0-9a-zA-Z]{6}$`)
)

const altChars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generate produces a fresh code in the canonical scheme.
func Generate() Code {
	b := make([]byte, 7)
	for i := 0; i < 6; i++ {
		b[i] = byte('0' + rand.Intn(10))
	}
	b[6] = byte('A' + rand.Intn(26))
	return Code(b)
}

// Validate reports whether candidate is exactly a canonical code: six
// digits then one uppercase letter, nothing before or after.
func Validate(candidate string) bool {
	return canonicalRe.MatchString(candidate)
}

// GenerateAlt produces a code in the alternate six-alphanumeric scheme.
// A room minted under one scheme stays on that scheme for the lifetime of
// its stored data; the schemes are interchangeable but not mixable.
func GenerateAlt() Code {
	b := make([]byte, 6)
	for i := range b {
		b[i] = altChars[rand.Intn(len(altChars))]
	}
	return Code(b)
}

// ValidateAlt reports whether candidate is exactly an alternate-scheme code.
func ValidateAlt(candidate string) bool {
	return altRe.MatchString(candidate)
}

// ResolveFromLocator reads the room code from a locator. If the parameter
// is absent or fails validation, a fresh canonical code is generated and
// written back into the locator in place, so the current address becomes
// shareable without navigating. Resolution is idempotent: a locator that
// already carries a valid code is returned untouched and rewritten=false.
func ResolveFromLocator(locator *url.URL) (code Code, rewritten bool) {
	q := locator.Query()
	if c := q.Get(Param); Validate(c) {
		return Code(c), false
	}
	code = Generate()
	q.Set(Param, string(code))
	locator.RawQuery = q.Encode()
	return code, true
}

// SwitchLocator builds the locator for an explicit room switch (join by
// code, "new room"). Unlike ResolveFromLocator this never reuses the
// current code; the caller is expected to navigate to the returned URL.
func SwitchLocator(locator *url.URL, code Code) *url.URL {
	next := *locator
	q := next.Query()
	q.Set(Param, string(code))
	next.RawQuery = q.Encode()
	return &next
}
