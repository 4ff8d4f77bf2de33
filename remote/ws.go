// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package remote

import (
	"net"
	"net/http"

	"github.com/gorilla/websocket"
)

// messageConn is the framing wsLink needs from a websocket.
type messageConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type wsLink struct {
	conn    messageConn
	pending []uint8
}

func newWSLink(conn messageConn) (li *wsLink) {
	return &wsLink{conn: conn}
}

func (li *wsLink) ReadFull(buf []uint8) error {
	for len(li.pending) < len(buf) {
		kind, msg, err := li.conn.ReadMessage()
		if err != nil {
			return err
		}
		if kind != websocket.BinaryMessage {
			return ErrMessage
		}

		li.pending = append(li.pending, msg...)
	}

	copy(buf, li.pending)
	li.pending = li.pending[len(buf):]

	return nil
}

func (li *wsLink) Send(msg []uint8) error {
	return li.conn.WriteMessage(websocket.BinaryMessage, msg)
}

func (li *wsLink) Close() error {
	return li.conn.Close()
}

var upgrader = websocket.Upgrader{}

// AcceptWS serves one websocket upgrade at pattern on lis and
// completes the peripheral's mapping handshake over the socket. The
// upgraded connection outlives the one-shot server.
func AcceptWS(lis net.Listener, pattern string) (dev *Device, err error) {
	type result struct {
		dev *Device
		err error
	}

	results := make(chan result, 2)

	mux := http.NewServeMux()
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			results <- result{nil, err}
			return
		}

		dev, err := handshake(newWSLink(conn))
		if err != nil {
			conn.Close()
			results <- result{nil, err}
			return
		}

		results <- result{dev, nil}
	})

	server := &http.Server{Handler: mux}
	go func() {
		results <- result{nil, server.Serve(lis)}
	}()

	res := <-results
	_ = server.Close()

	return res.dev, res.err
}
