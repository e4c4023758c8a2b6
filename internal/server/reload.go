package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
)

// ReloadHub tracks live-reload websocket clients and broadcasts a reload
// event whenever watched files change.
type ReloadHub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewReloadHub creates an empty hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		upgrader: websocket.Upgrader{
			// The page is served from this same host; skip origin checks
			// so dev setups behind port forwards still connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler upgrades incoming connections and registers them for broadcasts.
func (h *ReloadHub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("livereload upgrade: %v", err)
			return
		}

		h.mu.Lock()
		h.clients[conn] = struct{}{}
		h.mu.Unlock()

		// Drain (and discard) client messages until the connection dies,
		// so closed clients get cleaned up.
		go func() {
			defer h.drop(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

func (h *ReloadHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast tells every connected page to reload.
func (h *ReloadHub) Broadcast() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			h.drop(c)
		}
	}
}

// ClientCount reports the number of connected clients, for tests.
func (h *ReloadHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Watch watches the given paths and invokes rebuild then a broadcast on
// every write event. It blocks until the watcher fails or stop is closed.
func (h *ReloadHub) Watch(paths []string, rebuild func() error, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := watcher.Add(p); err != nil {
			log.Printf("watching %s: %v", p, err)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Printf("change detected: %s", event.Name)
			if err := rebuild(); err != nil {
				log.Printf("rebuild failed: %v", err)
				continue
			}
			h.Broadcast()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		case <-stop:
			return nil
		}
	}
}
