package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512 * 1024

	sendBuffer = 64
)

// Client is one websocket connection. The gateway keeps no session
// state per client; a reconnecting grid simply re-issues its get
// commands.
//
// Frames reach the send channel from two goroutines: the hub fan-out
// and the client's own read loop replying to commands. The mutex and
// closed flag keep either of them from sending after the hub has
// closed the channel.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	logger *zap.Logger

	mu     sync.Mutex
	closed bool
}

func newClient(hub *Hub, conn *websocket.Conn, logger *zap.Logger) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		logger: logger,
	}
}

// enqueue queues a frame without blocking. It reports false when the
// client is already closed or its buffer is full.
func (c *Client) enqueue(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// closeSend closes the send channel exactly once. Safe to call from
// the hub and the pumps concurrently.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// reply queues a frame for this client only. A full buffer or a
// dropped client loses the frame; the client recovers on its next get
// command after reconnecting.
func (c *Client) reply(event string, data interface{}, ack string) {
	frame, err := marshalEnvelope(event, data, ack)
	if err != nil {
		c.logger.Error("échec de la sérialisation de la réponse",
			zap.String("event", event), zap.Error(err))
		return
	}
	if !c.enqueue(frame) {
		c.logger.Warn("réponse abandonnée", zap.String("event", event))
	}
}

// readPump runs the command loop. Commands run on a connection-scoped
// context, not the upgrade request's: net/http cancels the request
// context as soon as the handler returns, long before the connection
// is done.
func (c *Client) readPump(gw *Gateway) {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("fermeture websocket inattendue", zap.Error(err))
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.reply("error", ErrorPayload{Message: "message illisible"}, "")
			continue
		}
		gw.Dispatch(ctx, c, &env)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
