package spectate

import (
	"log"
	"sync"

	"retry-snake/game/manager"
	"retry-snake/game/types"

	"github.com/vmihailenco/msgpack/v5"
)

// Hub fans session frames out to connected spectators. It implements
// manager.Renderer and manager.StatusSink; neither blocks on slow clients.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once

	frame  Frame
	latest []byte
}

func NewHub(grid types.Grid) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client, 64),
		done:       make(chan struct{}),
		frame:      Frame{Width: grid.Width, Height: grid.Height},
	}
}

// Run processes register/unregister events until Stop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			// New spectators see the board right away
			if h.latest != nil {
				select {
				case client.send <- h.latest:
				default:
				}
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register hands client to Run and reports false once the hub is stopped
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister drops client. After Stop every send channel is already closed.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Stop disconnects every spectator and ends Run
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Render(snake []types.Point, food types.Point) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frame.Snake = toCells(snake)
	h.frame.Food = Cell{X: food.X, Y: food.Y}
	h.publishLocked()
}

func (h *Hub) Status(st manager.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frame.setStatus(st)
	h.publishLocked()
}

func (h *Hub) publishLocked() {
	h.frame.Seq++
	data, err := msgpack.Marshal(&h.frame)
	if err != nil {
		log.Printf("spectate: encode frame: %v", err)
		return
	}
	h.latest = data

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow spectator; it catches up on the next frame
		}
	}
}
