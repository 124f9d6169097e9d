// Package messaging provides the websocket broadcaster feeding live
// visitor counters to connected admin dashboards.
package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
)

// StatsSource supplies the counters pushed on every tick.
type StatsSource interface {
	LiveCounters() (todayPV, todayUV, totalPV int, err error)
}

// StatsClient represents a single connected admin dashboard.
type StatsClient struct {
	Conn *websocket.Conn
	Send chan []byte
}

// LivePayload is the data structure sent to dashboards on each tick.
type LivePayload struct {
	TodayPV   int       `json:"todayPV"`
	TodayUV   int       `json:"todayUV"`
	TotalPV   int       `json:"totalPV"`
	Timestamp time.Time `json:"timestamp"`
}

// StatsBroadcaster manages all connected dashboard clients and pushes
// counter updates on a fixed interval.
type StatsBroadcaster struct {
	clients    map[*StatsClient]bool
	register   chan *StatsClient
	unregister chan *StatsClient
	source     StatsSource
	interval   time.Duration
	logger     *logging.ChanneledLogger
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
}

// NewStatsBroadcaster creates a new broadcaster instance.
func NewStatsBroadcaster(source StatsSource, interval time.Duration, logger *logging.ChanneledLogger) *StatsBroadcaster {
	return &StatsBroadcaster{
		clients:    make(map[*StatsClient]bool),
		register:   make(chan *StatsClient),
		unregister: make(chan *StatsClient),
		source:     source,
		interval:   interval,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Run starts the broadcaster's main loop. This should be run as a
// goroutine; it returns once Stop is called.
func (b *StatsBroadcaster) Run() {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-b.done:
			b.mu.Lock()
			for client := range b.clients {
				delete(b.clients, client)
				close(client.Send)
			}
			b.mu.Unlock()
			return

		case client := <-b.register:
			b.mu.Lock()
			b.clients[client] = true
			b.mu.Unlock()
			b.logger.HTTP().Info("Live stats client registered", "clients", b.ClientCount())

		case client := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[client]; ok {
				delete(b.clients, client)
				close(client.Send)
			}
			b.mu.Unlock()
			b.logger.HTTP().Info("Live stats client unregistered", "clients", b.ClientCount())

		case <-ticker.C:
			b.broadcast()
		}
	}
}

// Stop terminates the run loop and closes every connected client's
// send channel. Safe to call more than once.
func (b *StatsBroadcaster) Stop() {
	b.stopOnce.Do(func() { close(b.done) })
}

// Register queues a client for registration.
func (b *StatsBroadcaster) Register(client *StatsClient) {
	select {
	case b.register <- client:
	case <-b.done:
	}
}

// Unregister queues a client for unregistration.
func (b *StatsBroadcaster) Unregister(client *StatsClient) {
	select {
	case b.unregister <- client:
	case <-b.done:
	}
}

// ClientCount returns the number of connected dashboards.
func (b *StatsBroadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

func (b *StatsBroadcaster) broadcast() {
	b.mu.RLock()
	idle := len(b.clients) == 0
	b.mu.RUnlock()
	if idle {
		return
	}

	todayPV, todayUV, totalPV, err := b.source.LiveCounters()
	if err != nil {
		b.logger.Analytics().Error("Failed to load live counters", "error", err.Error())
		return
	}

	payload, err := json.Marshal(LivePayload{
		TodayPV:   todayPV,
		TodayUV:   todayUV,
		TotalPV:   totalPV,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for client := range b.clients {
		select {
		case client.Send <- payload:
		default:
			// Slow consumer: drop the frame rather than block the loop.
		}
	}
}

// WritePump drains a client's send channel onto its connection. It
// returns when the channel closes or a write fails.
func (c *StatsClient) WritePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
