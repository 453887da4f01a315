package mux

import (
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pokermaster-server/pkg/spectator"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

func (m *Mux) getPlayerNameWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		name := gmux.Vars(r)["name"]
		current, err := m.feed.Get(name)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		// subscribe before upgrading so no update is missed between the snapshot and the stream
		sub := m.feed.Subscribe(name)
		defer m.feed.Unsubscribe(sub)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}
		defer conn.Close()

		logger := logrus.WithFields(logrus.Fields{
			"subscriber": sub.ID,
			"player":     name,
		})

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(current.View(false)); err != nil {
			logger.WithError(err).Error("could not write message")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		closed := make(chan struct{})
		go webSocketReadLoop(conn, closed, logger)
		webSocketWriteLoop(conn, sub, closed, logger)
	}
}

// webSocketReadLoop discards incoming messages; spectators only listen
func webSocketReadLoop(conn *websocket.Conn, closed chan<- struct{}, logger logrus.FieldLogger) {
	defer close(closed)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Error("could not read message")
			}

			return
		}
	}
}

func webSocketWriteLoop(conn *websocket.Conn, sub *spectator.Subscription, closed <-chan struct{}, logger logrus.FieldLogger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case snap, ok := <-sub.C:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "feed closed"))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snap.View(false)); err != nil {
				logger.WithError(err).Error("could not write message")
				return
			}
		}
	}
}
