// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
)

// Coords is a GPS position.
type Coords struct {
	Lat float64
	Lng float64
}

// Geolocation failure modes. Either one surfaces as a dismissible notice;
// the pin is simply not recorded and nothing else changes.
var (
	ErrGeoDenied      = errors.New("location permission denied")
	ErrGeoUnavailable = errors.New("location unavailable")
)

// Geolocator acquires the current position. Acquisition is slow and
// fallible (it can wait seconds on a permission prompt), so it takes a
// context and must resolve to a position or an error - never hang.
type Geolocator interface {
	Current(ctx context.Context) (Coords, error)
}

// Cue names a sound effect. Playback is fire-and-forget; the core never
// observes a result.
type Cue string

const (
	CueClick Cue = "click"
	CueJoin  Cue = "join"
	CueKick  Cue = "kick"
)

// SoundPlayer plays a cue. Implementations must not block.
type SoundPlayer interface {
	Play(cue Cue)
}

// NopSounds is the default SoundPlayer: silence.
type NopSounds struct{}

func (NopSounds) Play(Cue) {}
