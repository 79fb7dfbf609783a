// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quepasa/directory"
	"github.com/danielhkuo/quepasa/msglog"
	"github.com/danielhkuo/quepasa/palette"
	"github.com/danielhkuo/quepasa/poll"
)

// ansiByToken maps palette tokens to the nearest ANSI foreground code.
var ansiByToken = map[palette.Token]string{
	palette.Red:    "31",
	palette.Orange: "33",
	palette.Yellow: "93",
	palette.Green:  "32",
	palette.Teal:   "36",
	palette.Blue:   "34",
	palette.Indigo: "94",
	palette.Purple: "35",
	palette.Pink:   "95",
	palette.Brown:  "90",
}

// Renderer formats roster, transcript and tally views for a terminal.
type Renderer struct {
	color bool
}

// New returns a renderer; color controls ANSI escapes.
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

// NewAuto enables color only when f is an interactive terminal.
func NewAuto(f *os.File) *Renderer {
	return New(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (r *Renderer) paint(t palette.Token, s string) string {
	code, ok := ansiByToken[t]
	if !r.color || !ok {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Roster renders the member list in insertion order, marking the owner.
func (r *Renderer) Roster(members []directory.Entry, owner string) string {
	if len(members) == 0 {
		return "(empty room)\n"
	}
	var b strings.Builder
	for _, m := range members {
		b.WriteString("  ")
		b.WriteString(r.paint(m.Color, "●"))
		b.WriteString(" ")
		b.WriteString(m.DisplayName)
		if m.DisplayName == owner {
			b.WriteString(" (host)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Transcript renders messages oldest first with relative timestamps.
func (r *Renderer) Transcript(msgs []msglog.Message) string {
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(r.paint(m.Color, m.Author))
		b.WriteString(" · ")
		b.WriteString(humanize.Time(m.SentAt))
		b.WriteString("\n  ")
		if m.Kind == msglog.KindLocation {
			fmt.Fprintf(&b, "📍 %.5f, %.5f", m.Lat, m.Lng)
		} else {
			b.WriteString(m.Body)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Tally renders a poll result.
func (r *Renderer) Tally(t poll.Tally) string {
	var b strings.Builder
	fmt.Fprintf(&b, "yes: %d  no: %d\n", t.YesCount, t.NoCount)
	if len(t.Voters) > 0 {
		b.WriteString("voted: ")
		b.WriteString(strings.Join(t.Voters, ", "))
		b.WriteString("\n")
	}
	return b.String()
}
