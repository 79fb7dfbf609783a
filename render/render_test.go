// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quepasa/directory"
	"github.com/danielhkuo/quepasa/msglog"
	"github.com/danielhkuo/quepasa/palette"
	"github.com/danielhkuo/quepasa/poll"
)

func TestRosterMarksOwner(t *testing.T) {
	r := New(false)
	out := r.Roster([]directory.Entry{
		{DisplayName: "sunny-otter-12", Color: palette.Red},
		{DisplayName: "sly-heron-42", Color: palette.Blue},
	}, "sunny-otter-12")

	if !strings.Contains(out, "sunny-otter-12 (host)") {
		t.Errorf("owner not marked:\n%s", out)
	}
	if strings.Contains(out, "sly-heron-42 (host)") {
		t.Errorf("non-owner marked as host:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("color disabled but ANSI escapes present")
	}
}

func TestRosterEmptyRoom(t *testing.T) {
	r := New(false)
	if out := r.Roster(nil, ""); !strings.Contains(out, "empty") {
		t.Errorf("unexpected empty-room rendering %q", out)
	}
}

func TestColorEnabledPaintsNames(t *testing.T) {
	r := New(true)
	out := r.Roster([]directory.Entry{{DisplayName: "x", Color: palette.Green}}, "")
	if !strings.Contains(out, "\x1b[32m") {
		t.Errorf("expected green escape in %q", out)
	}
}

func TestTranscriptRendersBothKinds(t *testing.T) {
	r := New(false)
	past := time.Now().Add(-3 * time.Minute)
	out := r.Transcript([]msglog.Message{
		{Kind: msglog.KindText, Author: "a", Color: palette.Red, Body: "hola", SentAt: past},
		{Kind: msglog.KindLocation, Author: "b", Color: palette.Blue, Lat: 1.5, Lng: -2.25, SentAt: past},
	})

	if !strings.Contains(out, "hola") {
		t.Errorf("text body missing:\n%s", out)
	}
	if !strings.Contains(out, "1.50000") || !strings.Contains(out, "-2.25000") {
		t.Errorf("coordinates missing:\n%s", out)
	}
	if !strings.Contains(out, "minutes ago") {
		t.Errorf("relative timestamp missing:\n%s", out)
	}
}

func TestTallyRendering(t *testing.T) {
	r := New(false)
	out := r.Tally(poll.Tally{YesCount: 2, NoCount: 1, Voters: []string{"a", "b", "c"}})

	if !strings.Contains(out, "yes: 2") || !strings.Contains(out, "no: 1") {
		t.Errorf("counts missing:\n%s", out)
	}
	if !strings.Contains(out, "a, b, c") {
		t.Errorf("voters missing:\n%s", out)
	}
}
