package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gridgame-backend/internal/usecase"
)

const (
	sessionCookie = "user_session"
	shutdownWait  = 5 * time.Second
)

type handlerFunc func(ctx context.Context, client *Client, msg *Message) error

type Server struct {
	logger *slog.Logger

	games  usecase.GameUseCase
	snakes usecase.SnakeUseCase

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc

	clientsMutex sync.Mutex
	clients      map[*Client]struct{}
}

func New(logger *slog.Logger, games usecase.GameUseCase, snakes usecase.SnakeUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),

		games:  games,
		snakes: snakes,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		handlers: make(map[string]handlerFunc),
		clients:  make(map[*Client]struct{}),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:turn"] = server.handleGameTurn
	server.handlers["game:reset"] = server.handleGameReset
	server.handlers["score:reset"] = server.handleScoreReset
	server.handlers["snake:start"] = server.handleSnakeStart
	server.handlers["snake:turn"] = server.handleSnakeTurn
	server.handlers["snake:autoplay"] = server.handleSnakeAutoPlay
	server.handlers["snake:reset"] = server.handleSnakeReset
	server.handlers["snake:stop"] = server.handleSnakeStop

	return server
}

// Start serves /ws until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
		that.closeClients()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeHTTP upgrades the request and runs the client until it disconnects.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	sessionID, header := that.sessionFromCookie(req)

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(that.logger, conn, sessionID)

	that.clientsMutex.Lock()
	that.clients[client] = struct{}{}
	that.clientsMutex.Unlock()

	log.Info("WebSocket connection established", "session_id", sessionID)

	go client.writePump()
	client.readPump(req.Context(), that.dispatch)

	that.clientsMutex.Lock()
	delete(that.clients, client)
	that.clientsMutex.Unlock()
}

func (that *Server) dispatch(ctx context.Context, client *Client, msg *Message) {
	log := that.logger.With("method", "dispatch", "action", msg.Action, "session_id", client.SessionID())

	handler, ok := that.handlers[msg.Action]
	if !ok {
		log.Warn("unknown action")
		client.sendError(msg.Action, fmt.Sprintf("unknown action %q", msg.Action))
		return
	}

	if err := handler(ctx, client, msg); err != nil {
		log.Error("error processing message", "error", err)
	}
}

// sessionFromCookie reuses the user_session cookie or issues a new one.
func (that *Server) sessionFromCookie(req *http.Request) (string, http.Header) {
	cookie, err := req.Cookie(sessionCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	sessionID := uuid.NewString()
	header := http.Header{}
	header.Add("Set-Cookie", (&http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Expires:  time.Now().Add(24 * time.Hour),
		Path:     "/ws",
		HttpOnly: true,
	}).String())

	return sessionID, header
}

func (that *Server) closeClients() {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	for client := range that.clients {
		client.close()
	}
}
