// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/danielhkuo/quepasa/roomcode"
)

// Locator builds the shareable URL for a room: the base address with the
// room code set as the query parameter.
func Locator(base *url.URL, code roomcode.Code) *url.URL {
	return roomcode.SwitchLocator(base, code)
}

// QRPNG renders the room's share URL as a PNG of the given pixel size,
// suitable for the flash-QR overlay.
func QRPNG(locator *url.URL, sizePx int) ([]byte, error) {
	png, err := qrcode.Encode(locator.String(), qrcode.Medium, sizePx)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}

// QRText renders the share URL as a half-block terminal QR code for the
// CLI surface.
func QRText(locator *url.URL) (string, error) {
	q, err := qrcode.New(locator.String(), qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to render QR code: %w", err)
	}
	return q.ToSmallString(false), nil
}
