// Package socket keeps the notification websocket for the signed-in user.
package socket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"podash/pkg/utils"
)

// Handler receives the text of every notification frame
type Handler func(message string)

// Manager owns at most one live connection
type Manager struct {
	url     string
	handler Handler
	dialer  *websocket.Dialer

	// op serializes Connect and Disconnect, teardown and dial included
	op sync.Mutex

	mu   sync.Mutex
	conn *websocket.Conn
	done chan struct{}
	user string
}

// NewManager returns a manager dialling socketURL and passing frames to h
func NewManager(socketURL string, h Handler) *Manager {
	return &Manager{
		url:     socketURL,
		handler: h,
		dialer:  websocket.DefaultDialer,
	}
}

// Connected reports whether a connection is currently open
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn != nil
}

// Connect replaces any existing connection with a new one for userID
func (m *Manager) Connect(ctx context.Context, userID, token string) error {
	m.op.Lock()
	defer m.op.Unlock()
	m.disconnect()

	u, err := url.Parse(m.url)
	if err != nil {
		return fmt.Errorf("invalid socket url: %w", err)
	}
	q := u.Query()
	q.Set("userId", userID)
	u.RawQuery = q.Encode()

	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := m.dialer.DialContext(ctx, u.String(), header)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", m.url, err)
	}

	done := make(chan struct{})
	m.mu.Lock()
	m.conn = conn
	m.done = done
	m.user = userID
	m.mu.Unlock()

	utils.Logger.Infow("socket connected", "user", userID)
	go m.read(conn, done)
	return nil
}

func (m *Manager) read(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			utils.Log("socket reader stopped: %v", err)
			return
		}
		if kind != websocket.TextMessage || m.handler == nil {
			continue
		}
		m.handler(string(data))
	}
}

// Disconnect closes the connection and waits for its reader to exit
func (m *Manager) Disconnect() {
	m.op.Lock()
	defer m.op.Unlock()
	m.disconnect()
}

func (m *Manager) disconnect() {
	m.mu.Lock()
	conn, done, user := m.conn, m.done, m.user
	m.conn, m.done, m.user = nil, nil, ""
	m.mu.Unlock()

	if conn == nil {
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	<-done
	utils.Logger.Infow("socket disconnected", "user", user)
}

// Sync connects when both userID and token are set and disconnects otherwise
func (m *Manager) Sync(ctx context.Context, userID, token string) error {
	if userID == "" || token == "" {
		m.Disconnect()
		return nil
	}
	return m.Connect(ctx, userID, token)
}
