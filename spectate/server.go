package spectate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Read-only feed; any page may watch
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Routes serves the spectator websocket at /ws
func Routes(hub *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("spectate: upgrade error: %v", err)
			return
		}

		client := NewClient(hub, conn, r.RemoteAddr)
		if !hub.Register(client) {
			conn.Close()
			return
		}

		go client.WritePump()
		go client.ReadPump()
	})
	return mux
}

// Server runs a Hub behind an HTTP listener
type Server struct {
	hub  *Hub
	http *http.Server
	ln   net.Listener
}

// Listen binds addr and starts serving in the background
func Listen(addr string, hub *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectate listen on %s: %w", addr, err)
	}

	s := &Server{
		hub: hub,
		http: &http.Server{
			Handler:           Routes(hub),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln: ln,
	}

	go hub.Run()
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectate: serve: %v", err)
		}
	}()

	log.Printf("spectate: feed on ws://%s/ws", ln.Addr())
	return s, nil
}

func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Close disconnects spectators and stops the listener
func (s *Server) Close() error {
	s.hub.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
