package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xtding233/montyhall-backend/internal/logger"
	"github.com/xtding233/montyhall-backend/internal/monty"
	"github.com/xtding233/montyhall-backend/internal/odds"
	"github.com/xtding233/montyhall-backend/internal/preset"
)

var errNoGame = errors.New("no manual game active; start one with /game/new")

func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorView(err))
}

// overridesFromQuery reads the optional board/run parameters shared by
// the game and simulation endpoints.
func overridesFromQuery(r *http.Request) (preset.Overrides, string) {
	var o preset.Overrides
	if v, ok, msg := parseInt(r, "doors"); msg != "" {
		return o, msg
	} else if ok {
		o.Doors = &v
	}
	if v, ok, msg := parseInt(r, "prizes"); msg != "" {
		return o, msg
	} else if ok {
		o.Prizes = &v
	}
	if v, ok, msg := parseInt(r, "trials"); msg != "" {
		return o, msg
	} else if ok {
		o.Trials = &v
	}
	if v, ok, msg := parseInt(r, "delay_ms"); msg != "" {
		return o, msg
	} else if ok {
		o.DelayMS = &v
	}
	return o, ""
}

// Routes wires every endpoint onto a fresh mux.
func Routes(loader *preset.Loader) *http.ServeMux {
	mux := http.NewServeMux()
	s := GetSession()

	// validates raw text inputs; the error code tells the UI which
	// message to show
	mux.HandleFunc("/validate", func(w http.ResponseWriter, r *http.Request) {
		cfg, err := monty.ParseConfig(r.URL.Query().Get("doors"), r.URL.Query().Get("prizes"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	})

	mux.HandleFunc("/odds", func(w http.ResponseWriter, r *http.Request) {
		cfg, err := monty.ParseConfig(r.URL.Query().Get("doors"), r.URL.Query().Get("prizes"))
		if err != nil {
			writeError(w, err)
			return
		}
		trials, _, msg := parseInt(r, "trials")
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"stay_win":    odds.StayWin(cfg),
			"switch_win":  odds.SwitchWin(cfg),
			"advantage":   odds.Advantage(cfg),
			"expectation": odds.Expect(cfg, trials),
		})
	})

	mux.HandleFunc("/game/new", func(w http.ResponseWriter, r *http.Request) {
		o, msg := overridesFromQuery(r)
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		cfg, _, err := preset.Resolve(loader, r.URL.Query().Get("preset"), o)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.NewGame(cfg); err != nil {
			writeError(w, err)
			return
		}
		logger.Info("manual game started", "doors", cfg.Doors, "prizes", cfg.Prizes)
		view, _ := s.GameView()
		writeJSON(w, http.StatusOK, view)
	})

	mux.HandleFunc("/game/pick", func(w http.ResponseWriter, r *http.Request) {
		door, ok, msg := parseInt(r, "door")
		if !ok || msg != "" {
			http.Error(w, "missing/invalid param door", http.StatusBadRequest)
			return
		}
		if err := s.Pick(door); err != nil {
			writeError(w, err)
			return
		}
		view, _ := s.GameView()
		writeJSON(w, http.StatusOK, view)
	})

	mux.HandleFunc("/game/reveal", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Reveal(); err != nil {
			if errors.Is(err, monty.ErrNoOpenableDoor) {
				// config invariant broken upstream; not recoverable
				logger.Error("host rule contract violation", "err", err)
				writeJSON(w, http.StatusInternalServerError, errorView(err))
				return
			}
			writeError(w, err)
			return
		}
		view, _ := s.GameView()
		writeJSON(w, http.StatusOK, view)
	})

	mux.HandleFunc("/game/finalize", func(w http.ResponseWriter, r *http.Request) {
		door, ok, msg := parseInt(r, "door")
		if !ok || msg != "" {
			http.Error(w, "missing/invalid param door", http.StatusBadRequest)
			return
		}
		if err := s.Finalize(door); err != nil {
			writeError(w, err)
			return
		}
		view, _ := s.GameView()
		writeJSON(w, http.StatusOK, view)
	})

	mux.HandleFunc("/game/reset", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Reset(); err != nil {
			writeError(w, err)
			return
		}
		view, _ := s.GameView()
		writeJSON(w, http.StatusOK, view)
	})

	mux.HandleFunc("/game/state", func(w http.ResponseWriter, r *http.Request) {
		view, err := s.GameView()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	})

	mux.HandleFunc("/sim/start", func(w http.ResponseWriter, r *http.Request) {
		o, msg := overridesFromQuery(r)
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		cfg, params, err := preset.Resolve(loader, r.URL.Query().Get("preset"), o)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.StartSim(cfg, params); err != nil {
			writeError(w, err)
			return
		}
		logger.Info("simulation started",
			"doors", cfg.Doors, "prizes", cfg.Prizes,
			"trials", params.Trials, "delay", params.Delay)
		writeJSON(w, http.StatusOK, s.SimView())
	})

	mux.HandleFunc("/sim/stop", func(w http.ResponseWriter, r *http.Request) {
		s.StopSim()
		writeJSON(w, http.StatusOK, s.SimView())
	})

	mux.HandleFunc("/sim/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.SimView())
	})

	mux.HandleFunc("/sim/ws", func(w http.ResponseWriter, r *http.Request) {
		HandleSimWS(s, loader, w, r)
	})

	mux.Handle("/metrics", promhttp.Handler())

	return mux
}
