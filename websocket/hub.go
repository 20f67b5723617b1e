package websocket

import (
	"context"
	"strings"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ChannelPattern matches every chat channel published by the API.
const ChannelPattern = "chat-*"

type Message struct {
	ChatID string
	Data   []byte
}

// Hub maintains the set of active clients per chat and fans published events out to them.
type Hub struct {
	// Registered clients by chat ID
	clients map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message

	mu   sync.Mutex
	done chan struct{}
	log  *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 64),
		done:       make(chan struct{}),
		log:        log,
	}
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) Broadcast(message *Message) {
	select {
	case h.broadcast <- message:
	case <-h.done:
	}
}

// Clients returns the number of live connections for the chat.
func (h *Hub) Clients(chatID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[chatID])
}

// Run serves register, unregister and broadcast requests until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for chatID, clients := range h.clients {
				for client := range clients {
					close(client.send)
				}
				delete(h.clients, chatID)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.ChatID]; !ok {
				h.clients[client.ChatID] = make(map[*Client]bool)
			}
			h.clients[client.ChatID][client] = true
			h.mu.Unlock()
			h.log.Debug("ws client registered", zap.String("chat", client.ChatID), zap.String("member", client.MemberID))

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.ChatID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
				}
				if len(clients) == 0 {
					delete(h.clients, client.ChatID)
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			if clients, ok := h.clients[message.ChatID]; ok {
				for client := range clients {
					select {
					case client.send <- message.Data:
					default:
						// slow consumer
						close(client.send)
						delete(clients, client)
						if len(clients) == 0 {
							delete(h.clients, message.ChatID)
						}
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// Listen subscribes to every chat channel and feeds the payloads into the hub
// until ctx is done or the subscription closes.
func (h *Hub) Listen(ctx context.Context, client *redis.Client) error {
	sub := client.PSubscribe(ctx, ChannelPattern)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	h.log.Info("listening for chat events", zap.String("pattern", ChannelPattern))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			chatID := strings.TrimPrefix(msg.Channel, "chat-")
			h.Broadcast(&Message{ChatID: chatID, Data: []byte(msg.Payload)})
		}
	}
}
