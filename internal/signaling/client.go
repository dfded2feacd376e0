package signaling

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 64 * 1024 // 64 KB - enough for WebRTC SDP messages

	// Outbound buffer per connection.
	sendBuffer = 256
)

// Client is a wrapper for a single websocket connection (a peer). It
// implements Sink: the hub enqueues messages and WritePump drains them,
// so the hub's handlers never block on a slow peer.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	sess *Session

	send      chan *Message
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient registers a new connection with the hub under the given id.
// The caller starts ReadPump and WritePump afterwards.
func NewClient(hub *Hub, conn *websocket.Conn, id string) (*Client, error) {
	c := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan *Message, sendBuffer),
		done: make(chan struct{}),
	}

	sess, err := hub.Connect(id, c)
	if err != nil {
		return nil, err
	}
	c.sess = sess
	return c, nil
}

// ID returns the connection identifier assigned to this client.
func (c *Client) ID() string {
	return c.sess.ID
}

// Send enqueues a message for delivery. It never blocks: a peer whose
// buffer is full is considered stuck and gets disconnected.
func (c *Client) Send(msg *Message) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.send <- msg:
	default:
		slog.Warn("send buffer full, dropping connection", "connection", c.sess.ID)
		c.close()
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// ReadPump pumps messages from the websocket connection to the hub.
//
// The application runs ReadPump in a per-connection goroutine. The
// application ensures that there is at most one reader on a connection
// by executing all reads from this goroutine.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Disconnect(c.sess)
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", "connection", c.sess.ID, "error", err)
			}
			break
		}

		c.hub.Handle(c.sess, &msg)
	}
}

// WritePump pumps messages from the hub to the websocket connection.
//
// A goroutine running WritePump is started for each connection. The
// application ensures that there is at most one writer to a connection
// by executing all writes from this goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				slog.Debug("websocket write error", "connection", c.sess.ID, "error", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
