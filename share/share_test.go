// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"bytes"
	"net/url"
	"testing"
)

func TestLocatorCarriesCode(t *testing.T) {
	base, _ := url.Parse("https://quepasa.app/")
	u := Locator(base, "493817Q")
	if got := u.Query().Get("room"); got != "493817Q" {
		t.Errorf("locator carries %q, want 493817Q", got)
	}
	if base.RawQuery != "" {
		t.Error("base locator mutated")
	}
}

func TestQRPNGEncodes(t *testing.T) {
	u, _ := url.Parse("https://quepasa.app/?room=493817Q")
	png, err := QRPNG(u, 320)
	if err != nil {
		t.Fatal(err)
	}
	// PNG magic bytes
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestQRTextNonEmpty(t *testing.T) {
	u, _ := url.Parse("https://quepasa.app/?room=493817Q")
	s, err := QRText(u)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) == 0 {
		t.Error("empty terminal QR")
	}
}
