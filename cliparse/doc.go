// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration for the quepasa CLI.

CLI flags take precedence, environment variables fill the gaps, and
everything has a sensible default - a fresh checkout runs with no
configuration at all, against a local sqlite profile store.

	quepasa -u "https://quepasa.app/?room=493817Q"
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... quepasa

Settings:

  - DATABASE_URL (-d): profile store location (default: quepasa.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - QUEPASA_LOCATOR (-u): room locator to resolve or mint a code into
  - QR_SIZE_PX (-qr-size): flash QR render size (default: 320)
  - HOLD_MS (-hold-ms): press-and-hold duration for location pins
*/
package cliparse
