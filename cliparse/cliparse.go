package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL  string
	DatabaseType string
	Locator      string
	QRSizePx     int
	HoldMillis   int
}

// Defaults. The database default is a profile-local sqlite file, the
// moral equivalent of the browser profile all room state used to live in.
const (
	DefaultDatabaseURL = "quepasa.db"
	DefaultLocator     = "https://quepasa.app/"
	DefaultQRSizePx    = 320
	DefaultHoldMillis  = 10000
)

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quepasa", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (profile store)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Locator, "u", "", "Share locator (room URL to resolve or mint)")
	fs.IntVar(&cfg.QRSizePx, "qr-size", 0, "QR render size in pixels")
	fs.IntVar(&cfg.HoldMillis, "hold-ms", 0, "Press-and-hold duration for pinning location")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.Locator == "" {
		cfg.Locator = os.Getenv("QUEPASA_LOCATOR")
	}
	if cfg.Locator == "" {
		cfg.Locator = DefaultLocator
	}

	if cfg.QRSizePx == 0 {
		if v := os.Getenv("QR_SIZE_PX"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, errors.New("invalid QR_SIZE_PX env variable")
			}
			cfg.QRSizePx = n
		} else {
			cfg.QRSizePx = DefaultQRSizePx
		}
	}

	if cfg.HoldMillis == 0 {
		if v := os.Getenv("HOLD_MS"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, errors.New("invalid HOLD_MS env variable")
			}
			cfg.HoldMillis = n
		} else {
			cfg.HoldMillis = DefaultHoldMillis
		}
	}

	return cfg, nil
}
