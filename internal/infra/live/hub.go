// Package live implements the in-process fan-out of freshly stored readings
// to websocket subscribers.
package live

import (
	"context"
	"log/slog"
	"sync"

	"sensorhub/config"
	"sensorhub/internal/domain/entity"
	"sensorhub/internal/domain/service"

	"go.uber.org/fx"
)

// Subscription is a bounded queue of readings for one device.
type Subscription struct {
	deviceID string
	ch       chan *entity.Reading

	mu     sync.Mutex
	err    error
	closed bool
}

func (s *Subscription) DeviceID() string {
	return s.deviceID
}

func (s *Subscription) Readings() <-chan *entity.Reading {
	return s.ch
}

func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// close must be called with the hub lock held so no send races with it.
func (s *Subscription) close(reason error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.err = reason
	close(s.ch)
}

// Hub delivers each published reading to every subscriber of its device.
// Publish never waits: a subscriber whose queue is full is evicted.
type Hub struct {
	queueSize int
	logger    *slog.Logger

	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	closed bool
}

// Params defines the dependencies of the hub.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the hub and closes it when the application stops.
func New(params Params) *Hub {
	hub := NewHub(params.Config.Live.QueueSize, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

// NewHub creates a hub whose subscriptions buffer queueSize readings.
func NewHub(queueSize int, logger *slog.Logger) *Hub {
	if queueSize <= 0 {
		queueSize = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Hub{
		queueSize: queueSize,
		logger:    logger,
		subs:      make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe registers a new consumer of deviceID. On a closed hub the
// returned subscription is already ended with service.ErrHubClosed.
func (h *Hub) Subscribe(deviceID string) service.LiveSubscription {
	sub := &Subscription{
		deviceID: deviceID,
		ch:       make(chan *entity.Reading, h.queueSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.close(service.ErrHubClosed)

		return sub
	}

	set, ok := h.subs[deviceID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[deviceID] = set
	}
	set[sub] = struct{}{}

	return sub
}

// Unsubscribe removes a subscription. Calling it more than once is harmless.
func (h *Hub) Unsubscribe(ls service.LiveSubscription) {
	sub, ok := ls.(*Subscription)
	if !ok || sub == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.remove(sub)
	sub.close(nil)
}

// Publish offers the reading to every subscriber of its device.
func (h *Hub) Publish(reading *entity.Reading) {
	if reading == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	for sub := range h.subs[reading.DeviceID] {
		select {
		case sub.ch <- reading:
		default:
			h.remove(sub)
			sub.close(service.ErrSlowConsumer)
			h.logger.Warn("Evicted slow live subscriber",
				slog.String("device_id", reading.DeviceID),
				slog.Uint64("sequence_id", reading.SequenceID),
				slog.Int("queue_size", h.queueSize),
			)
		}
	}
}

// SubscriberCount returns the number of open subscriptions for a device.
func (h *Hub) SubscriberCount(deviceID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[deviceID])
}

// Close ends every subscription with service.ErrHubClosed.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for deviceID, set := range h.subs {
		for sub := range set {
			sub.close(service.ErrHubClosed)
		}
		delete(h.subs, deviceID)
	}
}

// remove must be called with h.mu held.
func (h *Hub) remove(sub *Subscription) {
	set, ok := h.subs[sub.deviceID]
	if !ok {
		return
	}

	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.deviceID)
	}
}
