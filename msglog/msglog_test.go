// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package msglog_test

import (
	"fmt"
	"testing"

	"github.com/danielhkuo/quepasa/directory"
	"github.com/danielhkuo/quepasa/msglog"
	"github.com/danielhkuo/quepasa/palette"
	"github.com/danielhkuo/quepasa/testutil"
)

const room = "654321B"

func TestAppendAndLoadPreservesOrder(t *testing.T) {
	st := testutil.SetupTestStore(t)
	ctx := st.NewContext()
	defer ctx.Close()
	log := msglog.New(ctx)

	for i := 0; i < 5; i++ {
		msg := msglog.NewText("m0", palette.Red, fmt.Sprintf("msg %d", i))
		if err := log.Append(room, msg); err != nil {
			t.Fatal(err)
		}
	}

	msgs, err := log.LoadAll(room)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 5 {
		t.Fatalf("loaded %d messages, want 5", len(msgs))
	}
	for i, m := range msgs {
		if want := fmt.Sprintf("msg %d", i); m.Body != want {
			t.Errorf("msgs[%d].Body = %q, want %q", i, m.Body, want)
		}
	}
}

func TestCapEvictsOldestFirst(t *testing.T) {
	st := testutil.SetupTestStore(t)
	ctx := st.NewContext()
	defer ctx.Close()
	log := msglog.New(ctx)

	for i := 0; i < 250; i++ {
		msg := msglog.NewText("m0", palette.Red, fmt.Sprintf("msg %d", i))
		if err := log.Append(room, msg); err != nil {
			t.Fatal(err)
		}
	}

	msgs, err := log.LoadAll(room)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != msglog.MaxMessages {
		t.Fatalf("loaded %d messages, want exactly %d", len(msgs), msglog.MaxMessages)
	}
	// The survivors are the most recent 200, oldest first.
	if msgs[0].Body != "msg 50" {
		t.Errorf("first survivor = %q, want msg 50", msgs[0].Body)
	}
	if msgs[len(msgs)-1].Body != "msg 249" {
		t.Errorf("last survivor = %q, want msg 249", msgs[len(msgs)-1].Body)
	}
}

func TestLocationMessageRoundtrip(t *testing.T) {
	st := testutil.SetupTestStore(t)
	ctx := st.NewContext()
	defer ctx.Close()
	log := msglog.New(ctx)

	pin := msglog.NewLocation("m0", palette.Blue, 48.85837, 2.29448)
	if err := log.Append(room, pin); err != nil {
		t.Fatal(err)
	}

	msgs, err := log.LoadAll(room)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Fatalf("loaded %d messages, want 1", len(msgs))
	}
	got := msgs[0]
	if got.Kind != msglog.KindLocation {
		t.Errorf("kind = %q, want location", got.Kind)
	}
	if got.Lat != 48.85837 || got.Lng != 2.29448 {
		t.Errorf("coords = %v,%v", got.Lat, got.Lng)
	}
	if got.ID == "" {
		t.Error("message lost its ID")
	}
}

func TestCorruptLogReadsAsEmpty(t *testing.T) {
	st := testutil.SetupTestStore(t)
	ctx := st.NewContext()
	defer ctx.Close()
	log := msglog.New(ctx)

	if err := ctx.Put(directory.MessagesKey(room), `{"oops": true}`); err != nil {
		t.Fatal(err)
	}

	msgs, err := log.LoadAll(room)
	if err != nil {
		t.Fatalf("corrupt log raised a fault: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("corrupt log decoded to %d messages, want 0", len(msgs))
	}

	// And an append over corruption starts a fresh log.
	if err := log.Append(room, msglog.NewText("m0", palette.Red, "hello")); err != nil {
		t.Fatal(err)
	}
	msgs, _ = log.LoadAll(room)
	if len(msgs) != 1 || msgs[0].Body != "hello" {
		t.Errorf("append over corruption produced %v", msgs)
	}
}
