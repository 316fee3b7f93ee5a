package server

import (
	"github.com/bokysan/base128/internal/base128"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"net/http"
	"time"
)

// maxCloseReason is the longest reason which fits into a close frame
const maxCloseReason = 123

// Websocket returns a handler which transcodes websocket messages: every binary message is answered with
// a text message holding its encoding, every text message with a binary message holding the decoded data.
// Text which cannot be decoded closes the connection with CloseInvalidFramePayloadData.
func (t *Transcoder) Websocket() http.HandlerFunc {
	upgrader := websocket.Upgrader{
		EnableCompression: t.EnableCompression,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("New websocket client %v", r.RemoteAddr)

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// The upgrader has already replied with an HTTP error
			log.WithError(err).Errorf("Socket upgrade failed: %+v", err)
			return
		}
		defer func() {
			if err := c.Close(); err != nil {
				log.WithError(err).Debugf("Could not close websocket: %v", err)
			}
		}()

		limit := t.MaxBodySize
		if limit <= 0 {
			limit = DefaultMaxBodySize
		}
		c.SetReadLimit(limit)

		enc := t.encoding(r)
		for {
			messageType, message, err := c.ReadMessage()
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debugf("Websocket client %v disconnected", r.RemoteAddr)
				return
			} else if err != nil {
				log.WithError(err).Warnf("Could not read from websocket: %v", err)
				return
			}

			switch messageType {
			case websocket.BinaryMessage:
				err = c.WriteMessage(websocket.TextMessage, []byte(enc.EncodeToString(message)))
			case websocket.TextMessage:
				data, derr := base128.Decode(base128.Strip(string(message)))
				if derr != nil {
					log.WithError(derr).Debugf("Could not decode websocket message: %v", derr)
					reason := derr.Error()
					if len(reason) > maxCloseReason {
						reason = reason[:maxCloseReason]
					}
					msg := websocket.FormatCloseMessage(websocket.CloseInvalidFramePayloadData, reason)
					if err := c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
						log.WithError(err).Debugf("Could not send close message: %v", err)
					}
					return
				}
				err = c.WriteMessage(websocket.BinaryMessage, data)
			}

			if err != nil {
				log.WithError(err).Warnf("Could not write to websocket: %v", err)
				return
			}
		}
	}
}
