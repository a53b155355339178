package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xtding233/montyhall-backend/internal/preset"
)

func testRoutes(t *testing.T) *http.ServeMux {
	t.Helper()
	dir := t.TempDir()
	presets := filepath.Join(dir, "presets")
	if err := os.MkdirAll(presets, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "board:\n  doors: 3\n  prizes: 1\nsim:\n  trials: 1000\n"
	if err := os.WriteFile(filepath.Join(presets, "default.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return Routes(preset.NewLoader(dir))
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: bad json %q: %v", method, target, rec.Body.String(), err)
		}
	}
	return rec.Code
}

func TestValidateEndpoint(t *testing.T) {
	mux := testRoutes(t)

	var cfg struct {
		Doors  int `json:"doors"`
		Prizes int `json:"prizes"`
	}
	if code := doJSON(t, mux, http.MethodGet, "/validate?doors=3&prizes=1", &cfg); code != http.StatusOK {
		t.Fatalf("code=%d", code)
	}
	if cfg.Doors != 3 || cfg.Prizes != 1 {
		t.Fatalf("cfg=%+v", cfg)
	}

	var ev ErrorView
	if code := doJSON(t, mux, http.MethodGet, "/validate?doors=3&prizes=2", &ev); code != http.StatusBadRequest {
		t.Fatalf("code=%d", code)
	}
	if ev.Code != "insufficient_switch_choice" {
		t.Fatalf("error view=%+v", ev)
	}

	if code := doJSON(t, mux, http.MethodGet, "/validate?doors=abc&prizes=1", &ev); code != http.StatusBadRequest {
		t.Fatalf("code=%d", code)
	}
	if ev.Code != "not_a_number" {
		t.Fatalf("error view=%+v", ev)
	}
}

func TestOddsEndpoint(t *testing.T) {
	mux := testRoutes(t)
	var out struct {
		StayWin   float64 `json:"stay_win"`
		SwitchWin float64 `json:"switch_win"`
	}
	if code := doJSON(t, mux, http.MethodGet, "/odds?doors=3&prizes=1", &out); code != http.StatusOK {
		t.Fatalf("code=%d", code)
	}
	if out.StayWin < 0.33 || out.StayWin > 0.34 || out.SwitchWin < 0.66 || out.SwitchWin > 0.67 {
		t.Fatalf("odds=%+v", out)
	}
}

func TestManualGameFlowOverHTTP(t *testing.T) {
	mux := testRoutes(t)

	var view GameView
	if code := doJSON(t, mux, http.MethodPost, "/game/new?doors=3&prizes=1", &view); code != http.StatusOK {
		t.Fatalf("new: code=%d", code)
	}
	if view.State != "initial" || view.Kind != "awaiting_pick" {
		t.Fatalf("view=%+v", view)
	}

	if code := doJSON(t, mux, http.MethodPost, "/game/pick?door=0", &view); code != http.StatusOK {
		t.Fatalf("pick: code=%d", code)
	}
	if view.State != "picked" {
		t.Fatalf("after pick: %+v", view)
	}

	if code := doJSON(t, mux, http.MethodPost, "/game/reveal", &view); code != http.StatusOK {
		t.Fatalf("reveal: code=%d", code)
	}
	if view.State != "revealed" {
		t.Fatalf("after reveal: %+v", view)
	}
	openCount, target := 0, -1
	for i, d := range view.Doors {
		if d.Open {
			openCount++
			if d.HasPrize == nil || *d.HasPrize {
				t.Fatalf("revealed door %d view=%+v", i, d)
			}
		} else if i != 0 {
			target = i
		}
	}
	if openCount != 1 || target < 0 {
		t.Fatalf("open=%d target=%d doors=%+v", openCount, target, view.Doors)
	}

	if code := doJSON(t, mux, http.MethodPost, "/game/finalize?door="+strconv.Itoa(target), &view); code != http.StatusOK {
		t.Fatalf("finalize: code=%d", code)
	}
	if view.State != "finished" {
		t.Fatalf("after finalize: %+v", view)
	}
	if total := view.Stay.Wins + view.Stay.Losses + view.Switch.Wins + view.Switch.Losses; total != 1 {
		t.Fatalf("total=%d view=%+v", total, view)
	}

	if code := doJSON(t, mux, http.MethodPost, "/game/reset", &view); code != http.StatusOK {
		t.Fatalf("reset: code=%d", code)
	}
	if view.State != "initial" {
		t.Fatalf("after reset: %+v", view)
	}
}
