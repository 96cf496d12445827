package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup
// response. Past that, a catchup.overflow message tells the client to do a
// full REST reload.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber of a channel arrives.
const listenTimeout = 10 * time.Second

// localSubBuffer is the channel depth of a local subscription. Local
// subscribers treat notifications as wake-ups and range the buffer for
// truth, so dropped payloads on a full channel are recoverable.
const localSubBuffer = 64

// CatchupEvent holds the data returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]any
}

// CatchupQuerier queries buffer events for catchup. Implemented by
// services.EventService.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// ConnectionManager fans NOTIFY payloads out to two kinds of consumers:
// WebSocket clients and local in-process subscriptions (the SSE stream
// handlers and run workers watching control channels). Each process has
// one instance; it drives LISTEN/UNLISTEN on the NotifyListener as
// channels gain and lose their first/last subscriber.
type ConnectionManager struct {
	// Active WebSocket connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// channel → set of websocket connection_ids
	channels map[string]map[string]bool
	// channel → local subscription id → delivery channel
	locals    map[string]map[string]chan []byte
	channelMu sync.RWMutex

	catchupQuerier CatchupQuerier

	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection is a single WebSocket client.
//
// subscriptions is accessed without a lock: all reads and writes happen on
// the goroutine that owns this connection (HandleConnection's read loop and
// its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// LocalSubscription is an in-process channel subscription. C fires with the
// raw NOTIFY payload; consumers must treat it as a wake-up and read the
// buffer for authoritative content.
type LocalSubscription struct {
	Channel string
	C       <-chan []byte

	id      string
	manager *ConnectionManager
}

// Close detaches the subscription. Idempotent.
func (s *LocalSubscription) Close() {
	s.manager.unsubscribeLocal(s.Channel, s.id)
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(catchupQuerier CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:    make(map[string]*Connection),
		channels:       make(map[string]map[string]bool),
		locals:         make(map[string]map[string]chan []byte),
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN. Called
// once during startup after both sides exist.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// ── Local subscriptions (SSE fan-out, control channels) ────

// SubscribeLocal attaches an in-process subscriber to a channel, LISTENing
// on it if this is the channel's first subscriber of any kind.
func (m *ConnectionManager) SubscribeLocal(ctx context.Context, channel string) (*LocalSubscription, error) {
	id := uuid.New().String()
	ch := make(chan []byte, localSubBuffer)

	m.channelMu.Lock()
	needsListen := !m.channelActiveLocked(channel)
	if _, ok := m.locals[channel]; !ok {
		m.locals[channel] = make(map[string]chan []byte)
	}
	m.locals[channel][id] = ch
	m.channelMu.Unlock()

	if needsListen {
		if err := m.ensureListen(ctx, channel); err != nil {
			m.unsubscribeLocal(channel, id)
			return nil, err
		}
	}

	return &LocalSubscription{Channel: channel, C: ch, id: id, manager: m}, nil
}

func (m *ConnectionManager) unsubscribeLocal(channel, id string) {
	m.channelMu.Lock()
	if subs, ok := m.locals[channel]; ok {
		if ch, ok := subs[id]; ok {
			delete(subs, id)
			close(ch)
		}
		if len(subs) == 0 {
			delete(m.locals, channel)
		}
	}
	released := !m.channelActiveLocked(channel)
	m.channelMu.Unlock()

	if released {
		m.releaseListen(channel)
	}
}

// channelActiveLocked reports whether any subscriber (ws or local) holds the
// channel. Caller must hold channelMu.
func (m *ConnectionManager) channelActiveLocked(channel string) bool {
	if subs, ok := m.channels[channel]; ok && len(subs) > 0 {
		return true
	}
	if subs, ok := m.locals[channel]; ok && len(subs) > 0 {
		return true
	}
	return false
}

// ensureListen synchronously establishes the PG LISTEN for a channel so a
// subsequent catchup or buffer replay cannot race a missed notification.
func (m *ConnectionManager) ensureListen(ctx context.Context, channel string) error {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return nil
	}

	listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
	defer cancel()
	if err := l.Subscribe(listenCtx, channel); err != nil {
		slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
		return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
	}
	return nil
}

// releaseListen UNLISTENs a channel once its last subscriber leaves. The
// goroutine re-checks activity before issuing UNLISTEN so a rapid
// unsubscribe/resubscribe cycle does not drop the LISTEN.
func (m *ConnectionManager) releaseListen(channel string) {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		m.channelMu.RLock()
		active := m.channelActiveLocked(channel)
		m.channelMu.RUnlock()
		if active {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// ── WebSocket connections ───────────────────────────────────

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast delivers an event payload to every subscriber of the channel.
// Local subscribers get a non-blocking send: a full channel drops the
// payload, which is safe because consumers re-read the buffer.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.channelMu.RLock()
	ids := make([]string, 0, len(m.channels[channel]))
	for id := range m.channels[channel] {
		ids = append(ids, id)
	}
	localChans := make([]chan []byte, 0, len(m.locals[channel]))
	for _, ch := range m.locals[channel] {
		localChans = append(localChans, ch)
	}
	m.channelMu.RUnlock()

	for _, ch := range localChans {
		select {
		case ch <- event:
		default:
			slog.Debug("Local subscriber buffer full, dropping notification",
				"channel", channel)
		}
	}

	if len(ids) == 0 {
		return
	}

	// Snapshot connection pointers, then send without holding locks: a slow
	// write (up to writeTimeout) must not stall register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel]) + len(m.locals[channel])
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if err := m.subscribe(ctx, c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up so late subscribers don't miss prior events.
		m.handleCatchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a connection for a channel and LISTENs if this is the
// channel's first subscriber. LISTEN is synchronous so the subsequent
// auto-catchup runs with LISTEN already active; events published between
// catchup and LISTEN would otherwise be lost.
func (m *ConnectionManager) subscribe(ctx context.Context, c *Connection, channel string) error {
	m.channelMu.Lock()
	needsListen := !m.channelActiveLocked(channel)
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		if err := m.ensureListen(ctx, channel); err != nil {
			m.cleanupFailedChannel(c, channel)
			return err
		}
	}

	c.subscriptions[channel] = true
	return nil
}

// cleanupFailedChannel removes all websocket subscribers from a channel
// after a LISTEN failure and notifies every affected connection except the
// triggering one, which learns via the returned error. Connections that
// subscribed while LISTEN was in flight got a false confirmation; clients
// must treat subscription.error as authoritative and re-subscribe or fall
// back to REST polling.
func (m *ConnectionManager) cleanupFailedChannel(triggering *Connection, channel string) {
	m.channelMu.Lock()
	affectedIDs := make([]string, 0, len(m.channels[channel]))
	for connID := range m.channels[channel] {
		if connID != triggering.ID {
			affectedIDs = append(affectedIDs, connID)
		}
	}
	delete(m.channels, channel)
	m.channelMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", conn.ID, "channel", channel)
		m.sendJSON(conn, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes a connection from a channel and releases the LISTEN
// if it was the channel's last subscriber.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
		}
	}
	released := !m.channelActiveLocked(channel)
	m.channelMu.Unlock()

	if released {
		m.releaseListen(channel)
	}

	delete(c.subscriptions, channel)
}

// handleCatchup sends missed events since lastEventID to the client.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, lastEventID int) {
	if m.catchupQuerier == nil {
		return
	}

	events, err := m.catchupQuerier.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	// The stored payload doesn't contain db_event_id (it's only added to the
	// NOTIFY payload at publish time), so inject it from the row id here.
	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
	}

	if hasMore {
		m.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
