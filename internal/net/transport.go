package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"ShapeBoard/internal/state"

	"github.com/gorilla/websocket"
)

// BoardPath is the websocket endpoint viewers connect to.
const BoardPath = "/board"

const writeWait = 5 * time.Second

// Snapshot is one published version of the host's document.
type Snapshot struct {
	Site     string          `json:"site"`
	Seq      uint64          `json:"seq"`
	Document *state.Document `json:"document"`
}

// Peer is a connected viewer.
type Peer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub is run by the HOST and fans snapshots out to every viewer.
type Hub struct {
	upgrader websocket.Upgrader
	peers    map[*Peer]struct{}
	latest   []byte
	mu       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: make(map[*Peer]struct{}),
	}
}

// Publish encodes doc right away, so the caller may keep mutating it, and
// queues it for every viewer. A viewer that has not caught up only keeps the
// newest snapshot.
func (h *Hub) Publish(doc *state.Document) error {
	data, err := json.Marshal(Snapshot{Site: state.SiteID(), Seq: state.NextSeq(), Document: doc})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for p := range h.peers {
		p.queue(data)
	}
	return nil
}

func (p *Peer) queue(data []byte) {
	for {
		select {
		case p.send <- data:
			return
		default:
		}
		select {
		case <-p.send:
		default:
		}
	}
}

// Peers is the number of connected viewers.
func (h *Hub) Peers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

func (h *Hub) add(conn *websocket.Conn) *Peer {
	p := &Peer{conn: conn, send: make(chan []byte, 1)}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p] = struct{}{}
	if h.latest != nil {
		p.send <- h.latest
	}
	log.Printf("[SHARE] Viewer connected from %s", conn.RemoteAddr())
	return p
}

func (h *Hub) remove(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.peers[p]; ok {
		delete(h.peers, p)
		close(p.send)
		log.Printf("[SHARE] Viewer %s disconnected", p.conn.RemoteAddr())
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SHARE] Upgrade failed: %v", err)
		return
	}
	p := h.add(conn)
	go p.writeLoop()

	// Viewers are read-only; reading only notices when they go away.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			h.remove(p)
			return
		}
	}
}

func (p *Peer) writeLoop() {
	defer p.conn.Close()
	for data := range p.send {
		p.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[SHARE] Error sending to %s: %v", p.conn.RemoteAddr(), err)
			return
		}
	}
	p.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

// ListenAndServe serves the hub on port until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle(BoardPath, h)
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[SHARE] Listening on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("share server: %w", err)
	}
	return nil
}

// BoardURL turns "host:port" or a share link into a websocket URL.
func BoardURL(addr string) string {
	addr = strings.TrimPrefix(addr, ShareScheme)
	addr = strings.TrimSuffix(addr, "/")
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, fmt.Sprint(DefaultPort))
	}
	return "ws://" + addr + BoardPath
}

// Follow connects to a host and calls apply for every snapshot newer than
// the last one applied. It returns when ctx is cancelled or the host goes away.
func Follow(ctx context.Context, addr string, apply func(*state.Document)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, BoardURL(addr), nil)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", addr, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	var last uint64
	for {
		var snap Snapshot
		if err := conn.ReadJSON(&snap); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read snapshot: %w", err)
		}
		if snap.Document == nil || snap.Seq <= last {
			continue
		}
		last = snap.Seq
		apply(snap.Document)
	}
}
