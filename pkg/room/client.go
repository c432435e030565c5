package room

import (
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a spectator connected to a table via websockets. Clients
// only receive state updates; all actions arrive over the HTTP API.
type Client struct {
	conn  *websocket.Conn
	send  chan interface{}
	table *Table
}

// AddClient registers a websocket connection with the table and starts
// pushing state updates to it. The current state is sent immediately.
func (t *Table) AddClient(conn *websocket.Conn) *Client {
	client := &Client{
		conn:  conn,
		send:  make(chan interface{}, 64),
		table: t,
	}

	t.clientMu.Lock()
	t.clients[client] = struct{}{}
	t.clientMu.Unlock()

	// queue the current state before the pumps start so the channel
	// cannot be closed underneath us
	client.enqueue(t.State())

	go client.writePump()
	go client.readPump()

	return client
}

// RemoveClient unregisters the client and closes its connection
func (t *Table) RemoveClient(client *Client) {
	t.clientMu.Lock()
	defer t.clientMu.Unlock()

	if _, found := t.clients[client]; found {
		delete(t.clients, client)
		close(client.send)
	}
}

// Broadcast sends a message to every connected client. Slow clients that
// cannot keep up are skipped.
func (t *Table) Broadcast(msg interface{}) {
	t.clientMu.Lock()
	defer t.clientMu.Unlock()

	for client := range t.clients {
		client.enqueue(msg)
	}
}

func (c *Client) enqueue(msg interface{}) {
	select {
	case c.send <- msg:
	default:
		logrus.WithField("table", c.table.UUID).Warn("dropping message to slow client")
	}
}

func (c *Client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			logrus.WithError(err).Debug("could not write to client")
			c.table.RemoveClient(c)
			break
		}
	}

	_ = c.conn.Close()
}

// readPump discards inbound messages and tears the client down when the
// connection drops
func (c *Client) readPump() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			c.table.RemoveClient(c)
			return
		}
	}
}
