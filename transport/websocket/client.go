package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Client is one websocket connection bound to a session.
type Client struct {
	logger *slog.Logger
	conn   *websocket.Conn
	send   chan []byte

	mu        sync.RWMutex
	sessionID string

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(logger *slog.Logger, conn *websocket.Conn, sessionID string) *Client {
	return &Client{
		logger:    logger.With("component", "client"),
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		sessionID: sessionID,
		done:      make(chan struct{}),
	}
}

func (that *Client) SessionID() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.sessionID
}

func (that *Client) setSessionID(sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessionID = sessionID
}

// readPump reads messages until the connection fails and hands each one to dispatch.
func (that *Client) readPump(parent context.Context, dispatch func(context.Context, *Client, *Message)) {
	log := that.logger.With("method", "readPump")

	ctx, cancel := context.WithCancel(parent)
	defer func() {
		cancel()
		that.close()
	}()

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn("websocket read error", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError("", "malformed message")
			continue
		}

		dispatch(ctx, that, &message)
	}
}

// writePump owns all writes to the connection.
func (that *Client) writePump() {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case <-that.done:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error("failed to write message", "error", err)
				that.close()
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				that.close()
				return
			}
		}
	}
}

// sendMessage queues a message; it is dropped when the client is gone or too slow.
func (that *Client) sendMessage(action string, payload Payload) {
	log := that.logger.With("method", "sendMessage", "action", action)

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal payload", "error", err)
		return
	}

	data, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		log.Error("failed to marshal message", "error", err)
		return
	}

	select {
	case <-that.done:
	case that.send <- data:
	default:
		log.Warn("send queue is full, message dropped")
	}
}

func (that *Client) sendError(action, errorMsg string) {
	that.sendMessage(action, Payload{SessionID: that.SessionID(), Error: errorMsg})
}

func (that *Client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}
