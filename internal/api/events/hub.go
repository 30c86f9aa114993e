package events

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"house_fund/internal/logger"

	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

const (
	pingInterval = 15 * time.Second
	sendBuffer   = 64
)

// Msg Сообщение в потоке событий
type Msg struct {
	T string `json:"t"`           // balance, story
	M any    `json:"m,omitempty"` // Данные события
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub Рассылает изменения баланса и сюжета всем подключенным клиентам.
// Клиенты только слушают, входящие сообщения игнорируются
type Hub struct {
	mu        sync.RWMutex
	clients   map[*client]struct{}
	broadcast chan []byte
	snapshot  func() []Msg
}

// NewHub snapshot - сообщения, которые получает каждый новый клиент
func NewHub(snapshot func() []Msg) *Hub {
	return &Hub{
		clients:   map[*client]struct{}{},
		broadcast: make(chan []byte, 256),
		snapshot:  snapshot,
	}
}

// Run Раздача сообщений клиентам до отмены ctx. Медленный клиент пропускает сообщения
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Publish Поставить сообщение в рассылку
func (h *Hub) Publish(msg Msg) {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Error("marshal event", zap.String("type", msg.T), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- data:
	default:
		logger.Log.Warn("event dropped", zap.String("type", msg.T))
	}
}

// Clients Количество подключенных клиентов
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		logger.Log.Debug("websocket accept", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	cl := &client{conn: c, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
	logger.Log.Info("events client connected", zap.Int("clients", h.Clients()))

	defer func() {
		h.mu.Lock()
		delete(h.clients, cl)
		h.mu.Unlock()
		logger.Log.Info("events client disconnected", zap.Int("clients", h.Clients()))
	}()

	if h.snapshot != nil {
		for _, msg := range h.snapshot() {
			data, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			cl.send <- data
		}
	}

	// writer
	go func() {
		ping := time.NewTicker(pingInterval)
		defer func() {
			ping.Stop()
			_ = c.Close(websocket.StatusNormalClosure, "bye")
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-cl.send:
				if err := c.Write(ctx, websocket.MessageText, msg); err != nil {
					cancel()
					return
				}
			case <-ping.C:
				_ = c.Ping(ctx)
			}
		}
	}()

	// reader
	for {
		if _, _, err := c.Read(ctx); err != nil {
			return
		}
	}
}
