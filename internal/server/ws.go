package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/xtding233/montyhall-backend/internal/logger"
	"github.com/xtding233/montyhall-backend/internal/preset"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// How often a connected client gets a simulator snapshot.
const statusInterval = 200 * time.Millisecond

type ClientMessage struct {
	Type    string `json:"type"` // "start" | "stop"
	Preset  string `json:"preset,omitempty"`
	Doors   *int   `json:"doors,omitempty"`
	Prizes  *int   `json:"prizes,omitempty"`
	Trials  *int   `json:"trials,omitempty"`
	DelayMS *int   `json:"delay_ms,omitempty"`
}

type ServerMessage struct {
	Type  string     `json:"type"` // "sim" | "error"
	Sim   *SimView   `json:"sim,omitempty"`
	Error *ErrorView `json:"error,omitempty"`
}

// HandleSimWS streams simulator snapshots to one client and accepts
// start/stop commands. The periodic snapshot is the live progress/trace
// feed the batch UI renders.
func HandleSimWS(s *Session, loader *preset.Loader, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	outCh := make(chan ServerMessage, 8)
	closeCh := make(chan struct{})

	go func() {
		defer close(closeCh)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg ClientMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				send(outCh, ServerMessage{Type: "error", Error: &ErrorView{Code: "bad_request", Message: "invalid json"}})
				continue
			}
			handleClientMessage(s, loader, msg, outCh)
		}
	}()

	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()
	for {
		select {
		case <-closeCh:
			return
		case msg := <-outCh:
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			view := s.SimView()
			if err := conn.WriteJSON(ServerMessage{Type: "sim", Sim: &view}); err != nil {
				return
			}
		}
	}
}

func handleClientMessage(s *Session, loader *preset.Loader, msg ClientMessage, outCh chan ServerMessage) {
	switch msg.Type {
	case "start":
		o := preset.Overrides{Doors: msg.Doors, Prizes: msg.Prizes, Trials: msg.Trials, DelayMS: msg.DelayMS}
		cfg, params, err := preset.Resolve(loader, msg.Preset, o)
		if err == nil {
			err = s.StartSim(cfg, params)
		}
		if err != nil {
			send(outCh, ServerMessage{Type: "error", Error: errorView(err)})
		}
	case "stop":
		s.StopSim()
	default:
		send(outCh, ServerMessage{Type: "error", Error: &ErrorView{Code: "unknown_type", Message: "unknown message type"}})
	}
}

// send drops the message if the writer is backed up; the next periodic
// snapshot carries the current state anyway.
func send(outCh chan ServerMessage, msg ServerMessage) {
	select {
	case outCh <- msg:
	default:
	}
}
