package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mealscope/mealscope/pkg/chart"
	"github.com/mealscope/mealscope/pkg/menu"
	"github.com/mealscope/mealscope/pkg/scoring"
	"github.com/mealscope/mealscope/pkg/viz"
)

func newTestServer(t *testing.T, input string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s, err := New(Options{Addr: ":0", Input: input, Mode: viz.ModeAverage})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func reloadedServer(t *testing.T) *Server {
	t.Helper()
	s := newTestServer(t, filepath.Join("..", "..", "testdata", "dishes.json"))
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, "dishes.json")
	w := get(t, s, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("body = %q, want it to contain %q", w.Body.String(), "ok")
	}
}

func TestNotReadyBeforeReload(t *testing.T) {
	s := newTestServer(t, "dishes.json")
	for _, path := range []string{"/api/report", "/api/dishes", "/chart"} {
		if w := get(t, s, path); w.Code != http.StatusServiceUnavailable {
			t.Errorf("GET %s before reload: status = %d, want %d", path, w.Code, http.StatusServiceUnavailable)
		}
	}
}

func TestReportEndpoint(t *testing.T) {
	s := reloadedServer(t)
	w := get(t, s, "/api/report")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var rep scoring.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if rep.DishCount != 8 {
		t.Errorf("DishCount = %d, want 8", rep.DishCount)
	}
	if len(rep.Ranking) != 8 {
		t.Errorf("len(Ranking) = %d, want 8", len(rep.Ranking))
	}
	if rep.Ranking[0].Name != "清蒸鲈鱼" {
		t.Errorf("top dish = %q, want 清蒸鲈鱼", rep.Ranking[0].Name)
	}
	if rep.Band != scoring.BandWeak {
		t.Errorf("Band = %q, want %q", rep.Band, scoring.BandWeak)
	}
}

func TestDishesFilters(t *testing.T) {
	s := reloadedServer(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"all", "", []string{"红烧肉", "宫保鸡丁", "清炒时蔬", "番茄蛋汤", "白米饭", "清蒸鲈鱼", "麻婆豆腐", "烤肉拌饭"}},
		{"by category", "?category=猪肉类", []string{"红烧肉"}},
		{"by popularity", "?min_popularity=9", []string{"宫保鸡丁", "烤肉拌饭"}},
		{"combined", "?category=鸡肉类&min_popularity=9", []string{"宫保鸡丁"}},
		{"none match", "?category=不存在", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s, "/api/dishes"+tt.query)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			var body struct {
				Count  int                 `json:"count"`
				Dishes []scoring.DishScore `json:"dishes"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Count != len(tt.want) {
				t.Fatalf("count = %d, want %d", body.Count, len(tt.want))
			}
			for i, want := range tt.want {
				if body.Dishes[i].Name != want {
					t.Errorf("dish %d = %q, want %q", i, body.Dishes[i].Name, want)
				}
			}
		})
	}
}

func TestDishesInvalidPopularity(t *testing.T) {
	s := reloadedServer(t)
	if w := get(t, s, "/api/dishes?min_popularity=high"); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestChartEndpoint(t *testing.T) {
	s := reloadedServer(t)
	w := get(t, s, "/chart")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := w.Body.String()
	for _, want := range []string{chart.DefaultTitle, "红烧肉", "猪肉"} {
		if !strings.Contains(body, want) {
			t.Errorf("chart page missing %q", want)
		}
	}
}

func TestRootRedirect(t *testing.T) {
	s := reloadedServer(t)
	w := get(t, s, "/")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/chart" {
		t.Errorf("Location = %q, want /chart", loc)
	}
}

func TestReloadSwapsSnapshot(t *testing.T) {
	cat, err := menu.LoadCatalog(filepath.Join("..", "..", "testdata", "dishes.json"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dishes.json")
	if err := menu.SaveCatalog(path, cat); err != nil {
		t.Fatalf("save catalog: %v", err)
	}

	s := newTestServer(t, path)
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	smaller := menu.Catalog{Dishes: cat.Dishes[:2]}
	if err := menu.SaveCatalog(path, smaller); err != nil {
		t.Fatalf("save catalog: %v", err)
	}
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("second Reload: %v", err)
	}

	var rep scoring.Report
	if err := json.Unmarshal(get(t, s, "/api/report").Body.Bytes(), &rep); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if rep.DishCount != 2 {
		t.Errorf("DishCount after reload = %d, want 2", rep.DishCount)
	}
}

func TestReloadFailureKeepsSnapshot(t *testing.T) {
	cat, err := menu.LoadCatalog(filepath.Join("..", "..", "testdata", "dishes.json"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dishes.json")
	if err := menu.SaveCatalog(path, cat); err != nil {
		t.Fatalf("save catalog: %v", err)
	}

	s := newTestServer(t, path)
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupt catalog: %v", err)
	}
	if err := s.Reload(context.Background()); err == nil {
		t.Fatal("expected reload error for corrupt catalog")
	}

	w := get(t, s, "/api/report")
	if w.Code != http.StatusOK {
		t.Fatalf("status after failed reload = %d, want %d", w.Code, http.StatusOK)
	}
	var rep scoring.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if rep.DishCount != 8 {
		t.Errorf("DishCount = %d, want previous snapshot's 8", rep.DishCount)
	}
}

func TestChartURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":8418", "http://localhost:8418/chart"},
		{"0.0.0.0:9000", "http://localhost:9000/chart"},
		{"127.0.0.1:8080", "http://127.0.0.1:8080/chart"},
		{"menus.internal:80", "http://menus.internal:80/chart"},
	}
	for _, tt := range tests {
		if got := chartURL(tt.addr); got != tt.want {
			t.Errorf("chartURL(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
