// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package msglog

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quepasa/directory"
	"github.com/danielhkuo/quepasa/palette"
	"github.com/danielhkuo/quepasa/roomcode"
	"github.com/danielhkuo/quepasa/store"
)

// Message kind constants
const (
	KindText     = "text"
	KindLocation = "location"
)

// MaxMessages caps the log length. Appends beyond the cap evict from the
// front, oldest first.
const MaxMessages = 200

// Message is one chat event: either a text message or a dropped location
// pin, tagged by Kind. Insertion order is display order.
type Message struct {
	ID     string        `json:"id"`
	Kind   string        `json:"kind"`
	Author string        `json:"author"`
	Color  palette.Token `json:"color"`
	Body   string        `json:"body,omitempty"`
	Lat    float64       `json:"lat,omitempty"`
	Lng    float64       `json:"lng,omitempty"`
	SentAt time.Time     `json:"sent_at"`
}

// NewText builds a text message stamped now.
func NewText(author string, color palette.Token, body string) Message {
	return Message{
		ID:     uuid.NewString(),
		Kind:   KindText,
		Author: author,
		Color:  color,
		Body:   body,
		SentAt: time.Now(),
	}
}

// NewLocation builds a location-pin message stamped now.
func NewLocation(author string, color palette.Token, lat, lng float64) Message {
	return Message{
		ID:     uuid.NewString(),
		Kind:   KindLocation,
		Author: author,
		Color:  color,
		Lat:    lat,
		Lng:    lng,
		SentAt: time.Now(),
	}
}

// Log is the append-only, capped message sequence for rooms, persisted
// alongside the roster. Append is a read-modify-write; two contexts
// appending at once race and the last write wins (see package store).
type Log struct {
	ctx *store.Context
}

func New(ctx *store.Context) *Log {
	return &Log{ctx: ctx}
}

// Append pushes msg onto the end of the room's log, evicting from the
// front until the length is back within MaxMessages, and persists the
// whole sequence.
func (l *Log) Append(room roomcode.Code, msg Message) error {
	msgs, err := l.LoadAll(room)
	if err != nil {
		return err
	}
	msgs = append(msgs, msg)
	if len(msgs) > MaxMessages {
		msgs = msgs[len(msgs)-MaxMessages:]
	}
	return store.WriteJSON(l.ctx, directory.MessagesKey(room), msgs)
}

// LoadAll returns the persisted sequence, oldest first. A missing or
// corrupt record is an empty log, same policy as the roster.
func (l *Log) LoadAll(room roomcode.Code) ([]Message, error) {
	return store.ReadJSON[[]Message](l.ctx, directory.MessagesKey(room))
}
