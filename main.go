package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"ShapeBoard/internal/board"
	"ShapeBoard/internal/config"
	sharenet "ShapeBoard/internal/net"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/ui"

	"fyne.io/fyne/v2"
)

const discoverTimeout = 3 * time.Second

func main() {
	// A share link passed by the OS opens a viewer directly.
	if len(os.Args) > 1 && strings.HasPrefix(os.Args[1], sharenet.ShareScheme) {
		runViewer(board.DefaultSizes, os.Args[1])
		return
	}

	var (
		configPath = flag.String("config", "shapeboard.toml", "settings file")
		exportDir  = flag.String("export-dir", "", "directory for exported PDFs")
		share      = flag.Bool("share", false, "publish the board to viewers on the LAN")
		port       = flag.Int("port", 0, "share server port")
		advertise  = flag.Bool("advertise", true, "announce the share server over mDNS")
		join       = flag.String("join", "", `view a shared board at host:port, or "auto" to discover one`)
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "export-dir":
			cfg.ExportDir = *exportDir
		case "share":
			cfg.Share = *share
		case "port":
			cfg.SharePort = *port
		case "advertise":
			cfg.Advertise = *advertise
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	if *join != "" {
		runViewer(cfg.Sizes(), *join)
		return
	}
	runHost(cfg)
}

func runHost(cfg config.Config) {
	log.Println("Starting drawing board")
	b := board.New(cfg.Sizes())
	w := ui.NewBoardWidget(b)

	shareLink := ""
	if cfg.Share {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		hub := sharenet.NewHub()
		repaint := b.OnRedraw
		b.OnRedraw = func() {
			repaint()
			if err := hub.Publish(b.Document()); err != nil {
				log.Printf("[SHARE] %v", err)
			}
		}
		if err := hub.Publish(b.Document()); err != nil {
			log.Printf("[SHARE] %v", err)
		}

		go func() {
			if err := hub.ListenAndServe(ctx, cfg.SharePort); err != nil {
				log.Printf("[SHARE] %v", err)
				w.SetStatus("Sharing stopped: " + err.Error())
			}
		}()

		if cfg.Advertise {
			server, err := sharenet.Advertise(cfg.SharePort)
			if err != nil {
				log.Printf("[SHARE] %v", err)
			} else {
				defer server.Shutdown()
			}
		}
		shareLink = fmt.Sprintf("%s%s:%d", sharenet.ShareScheme, sharenet.OutgoingIP(), cfg.SharePort)
		log.Printf("[SHARE] Viewers can join at %s", shareLink)
	}

	ui.RunApp(shareLink, w, cfg.ExportDir)
}

func runViewer(sizes board.Defaults, link string) {
	log.Println("Starting as VIEWER")
	b := board.New(sizes)
	w := ui.NewBoardWidget(b)

	go func() {
		ctx := context.Background()
		addr := link
		if addr == "auto" {
			w.SetStatus("Looking for a shared board...")
			found, err := sharenet.Discover(ctx, discoverTimeout)
			if err != nil {
				w.SetStatus(fmt.Sprintf("Discovery failed: %v", err))
				return
			}
			addr = found
		}

		w.SetStatus("Connecting to " + addr)
		err := sharenet.Follow(ctx, addr, func(doc *state.Document) {
			fyne.Do(func() { b.Replace(doc) })
		})
		if err != nil {
			w.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
			return
		}
		w.SetStatus("Host closed the board")
	}()

	ui.RunViewer(w)
}
