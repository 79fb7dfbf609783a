package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quepasa/cliparse"
	"github.com/danielhkuo/quepasa/directory"
	"github.com/danielhkuo/quepasa/gesture"
	"github.com/danielhkuo/quepasa/msglog"
	"github.com/danielhkuo/quepasa/poll"
	"github.com/danielhkuo/quepasa/render"
	"github.com/danielhkuo/quepasa/session"
	"github.com/danielhkuo/quepasa/share"
	"github.com/danielhkuo/quepasa/store"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("profile store unavailable", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	locator, err := url.Parse(cfg.Locator)
	if err != nil {
		slog.Error("invalid locator", "locator", cfg.Locator, "error", err)
		os.Exit(1)
	}

	out := render.NewAuto(os.Stdout)

	sess, err := session.Open(st, locator, session.Options{
		Geolocator: envGeo{},
		OnRoster: func(members []directory.Entry) {
			fmt.Println("\n-- roster changed --")
			fmt.Print(out.Roster(members, ""))
		},
		OnMessages: func(msgs []msglog.Message) {
			if len(msgs) > 0 {
				fmt.Print(out.Transcript(msgs[len(msgs)-1:]))
			}
		},
		OnKicked: func() {
			fmt.Println("You were removed from this room.")
			os.Exit(0)
		},
	})
	if err != nil {
		// Full room and blocked are terminal states, not retryable faults.
		switch {
		case errors.Is(err, directory.ErrRoomFull):
			fmt.Println("This room is full. Try another room code.")
		case errors.Is(err, directory.ErrBlocked):
			fmt.Println("You are blocked from this room.")
		default:
			slog.Error("failed to open room", "error", err)
		}
		os.Exit(1)
	}
	defer sess.Close()

	fmt.Printf("room %s as %s (share: %s)\n", sess.Code(), sess.Identity().DisplayName, locator)

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		sess.Close()
		os.Exit(0)
	}()

	repl(sess, locator, cfg, out)
}

// repl wires terminal input to session operations. Plain lines send text;
// /commands cover the rest of the surface.
func repl(sess *session.Session, locator *url.URL, cfg cliparse.Config, out *render.Renderer) {
	var hold gesture.Hold
	holdFor := time.Duration(cfg.HoldMillis) * time.Millisecond

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue

		case line == "/who":
			members, err := sess.Members()
			if err != nil {
				slog.Error("failed to read roster", "error", err)
				continue
			}
			owner := ""
			if name, ok, err := sess.Owner(); err == nil && ok {
				owner = name
			}
			fmt.Print(out.Roster(members, owner))

		case line == "/code":
			qr, err := share.QRText(share.Locator(locator, sess.Code()))
			if err != nil {
				slog.Error("failed to render QR", "error", err)
				continue
			}
			fmt.Println(sess.Code())
			fmt.Print(qr)

		case line == "/log":
			msgs, err := sess.Messages()
			if err != nil {
				slog.Error("failed to read messages", "error", err)
				continue
			}
			fmt.Print(out.Transcript(msgs))

		case line == "/pin":
			fmt.Printf("hold for %s... (/release to cancel)\n", holdFor)
			hold.Begin(holdFor, func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if err := sess.PinLocation(ctx); err != nil {
					fmt.Println("could not pin location:", err)
					return
				}
				fmt.Println("location pinned")
			})

		case line == "/release":
			hold.Cancel()

		case line == "/poll":
			if err := sess.StartPoll(); err != nil {
				fmt.Println(err)
			}

		case line == "/yes" || line == "/no":
			choice := poll.Yes
			if line == "/no" {
				choice = poll.No
			}
			if err := sess.Vote(choice); err != nil {
				fmt.Println(err)
				continue
			}
			tally, err := sess.PollTally()
			if err == nil {
				fmt.Print(out.Tally(tally))
			}

		case strings.HasPrefix(line, "/kick "):
			target := strings.TrimSpace(strings.TrimPrefix(line, "/kick "))
			if err := sess.Kick(target); err != nil {
				fmt.Println(err)
			}

		case line == "/leave":
			if err := sess.Leave(); err != nil {
				slog.Error("failed to leave", "error", err)
			}
			return

		case line == "/quit":
			return

		default:
			if err := sess.SendText(line); err != nil {
				slog.Error("failed to send message", "error", err)
			}
		}
	}
}

// envGeo reads a fixed position from QUEPASA_LAT/QUEPASA_LNG. A terminal
// has no geolocation service; unset variables mean acquisition is
// unavailable, same as a denied browser prompt.
type envGeo struct{}

func (envGeo) Current(context.Context) (session.Coords, error) {
	latStr, lngStr := os.Getenv("QUEPASA_LAT"), os.Getenv("QUEPASA_LNG")
	if latStr == "" || lngStr == "" {
		return session.Coords{}, session.ErrGeoUnavailable
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return session.Coords{}, session.ErrGeoUnavailable
	}
	return session.Coords{Lat: lat, Lng: lng}, nil
}
