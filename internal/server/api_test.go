package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"promptatlas/internal/analyzer"
	"promptatlas/internal/dataset"
	"promptatlas/internal/domain"
	"promptatlas/internal/http/handlers"
	"promptatlas/internal/platform/logger"
	"promptatlas/internal/promptgen"
	"promptatlas/internal/taxonomy"
)

func testRouter(t *testing.T, store *dataset.Store) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	return NewRouter(RouterConfig{
		Log:           log,
		HealthHandler: handlers.NewHealthHandler(),
		StatsHandler:  handlers.NewStatsHandler(log, store),
		BrowseHandler: handlers.NewBrowseHandler(log, store),
		LoraHandler:   handlers.NewLoraHandler(log, store),
		PromptHandler: handlers.NewPromptHandler(log, promptgen.NewSeeded(1)),
	})
}

func testStore(t *testing.T) *dataset.Store {
	t.Helper()
	ds := analyzer.New(logger.NewNop(), taxonomy.Default()).Analyze([]domain.RawRecord{
		{ID: 1, BaseModel: "SDXL", PositivePrompt: "1girl sitting on a beach",
			Sampler: "Euler a", Steps: 20, CFGScale: 7,
			Loras: []domain.LoraRef{{Name: "A", Weight: 0.8}, {Name: "B", Weight: 1.0}}},
		{ID: 2, BaseModel: "SDXL", PositivePrompt: "1girl standing in a forest",
			Sampler: "Euler a", Steps: 30, CFGScale: 5,
			Loras: []domain.LoraRef{{Name: "A", Weight: 0.6}}},
		{ID: 3, BaseModel: "Pony", PositivePrompt: "a man sitting indoors",
			Sampler: "DPM++ 2M", Steps: 40, CFGScale: 6},
		{ID: 4},
	})
	return dataset.NewFromDataset(ds, logger.NewNop())
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	out := map[string]any{}
	if rr.Body.Len() > 0 && strings.Contains(rr.Header().Get("Content-Type"), "json") {
		if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s %s: %v (body=%s)", method, path, err, rr.Body.String())
		}
	}
	return rr, out
}

func TestHealthcheck(t *testing.T) {
	h := testRouter(t, testStore(t))

	rr, _ := doJSON(t, h, http.MethodGet, "/healthcheck", "")
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("status=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestStats(t *testing.T) {
	h := testRouter(t, testStore(t))

	rr, out := doJSON(t, h, http.MethodGet, "/api/stats", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if out["available"] != true {
		t.Fatalf("expected available=true: %v", out)
	}
	meta := out["metadata"].(map[string]any)
	if meta["total_images"].(float64) != 4 || meta["with_prompts"].(float64) != 3 {
		t.Fatalf("unexpected metadata: %v", meta)
	}
}

func TestBrowseFiltered(t *testing.T) {
	h := testRouter(t, testStore(t))

	body := `{"filters": {"subject": ["1girl"], "pose": ["sitting"]}}`
	rr, out := doJSON(t, h, http.MethodPost, "/api/browse", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if out["total"].(float64) != 1 {
		t.Fatalf("expected total=1: %v", out)
	}
	records := out["records"].([]any)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0].(map[string]any)
	if rec["id"].(float64) != 1 {
		t.Fatalf("unexpected record: %v", rec)
	}
	tech := out["technical"].(map[string]any)
	if tech["most_common_sampler"] != "Euler a" {
		t.Fatalf("unexpected technical summary: %v", tech)
	}
}

func TestBrowseNoBody(t *testing.T) {
	h := testRouter(t, testStore(t))

	rr, out := doJSON(t, h, http.MethodPost, "/api/browse", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if out["total"].(float64) != 3 {
		t.Fatalf("expected the whole set: %v", out)
	}
}

func TestBrowseNoMatches(t *testing.T) {
	h := testRouter(t, testStore(t))

	rr, out := doJSON(t, h, http.MethodPost, "/api/browse", `{"filters": {"subject": ["dragon"]}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if out["total"].(float64) != 0 {
		t.Fatalf("expected empty result set: %v", out)
	}
}

func TestBrowseInvalidBody(t *testing.T) {
	h := testRouter(t, testStore(t))

	rr, out := doJSON(t, h, http.MethodPost, "/api/browse", `{"filters": 42}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	errObj := out["error"].(map[string]any)
	if errObj["code"] != "invalid_request" {
		t.Fatalf("unexpected error envelope: %v", out)
	}
}

func TestRandomSingleton(t *testing.T) {
	h := testRouter(t, testStore(t))

	body := `{"filters": {"environment": ["forest"]}}`
	for i := 0; i < 5; i++ {
		rr, out := doJSON(t, h, http.MethodPost, "/api/random", body)
		if rr.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
		}
		if out["found"] != true {
			t.Fatalf("expected found=true: %v", out)
		}
		rec := out["record"].(map[string]any)
		if rec["id"].(float64) != 2 {
			t.Fatalf("singleton draw returned wrong record: %v", rec)
		}
	}
}

func TestRandomEmptySet(t *testing.T) {
	h := testRouter(t, testStore(t))

	rr, out := doJSON(t, h, http.MethodPost, "/api/random", `{"filters": {"subject": ["dragon"]}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if out["found"] != false {
		t.Fatalf("expected found=false: %v", out)
	}
}

func TestGetRecord(t *testing.T) {
	h := testRouter(t, testStore(t))

	rr, out := doJSON(t, h, http.MethodGet, "/api/images/3", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	rec := out["record"].(map[string]any)
	if rec["baseModel"] != "Pony" {
		t.Fatalf("unexpected record: %v", rec)
	}

	rr, out = doJSON(t, h, http.MethodGet, "/api/images/99", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	errObj := out["error"].(map[string]any)
	if errObj["code"] != "record_not_found" {
		t.Fatalf("unexpected error envelope: %v", out)
	}

	rr, _ = doJSON(t, h, http.MethodGet, "/api/images/abc", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLoraInsights(t *testing.T) {
	h := testRouter(t, testStore(t))

	rr, out := doJSON(t, h, http.MethodGet, "/api/loras", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	la := out["lora_analysis"].(map[string]any)
	counts := la["counts"].(map[string]any)
	if counts["A"].(float64) != 2 {
		t.Fatalf("unexpected lora counts: %v", counts)
	}
	ts := out["technical_settings"].(map[string]any)
	if ts["steps_avg"].(float64) != 30 {
		t.Fatalf("unexpected technical settings: %v", ts)
	}
}

func TestPromptGenerate(t *testing.T) {
	h := testRouter(t, testStore(t))

	body := `{"selections": {"pose": ["sitting"]}, "count": 3, "include_quality": true}`
	rr, out := doJSON(t, h, http.MethodPost, "/api/prompts/generate", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if out["count"].(float64) != 3 {
		t.Fatalf("expected 3 variations: %v", out)
	}
	variations := out["variations"].([]any)
	if len(variations) != 3 {
		t.Fatalf("expected 3 variations, got %d", len(variations))
	}
	first := variations[0].(map[string]any)
	if first["positive"] == "" || first["negative"] == "" {
		t.Fatalf("empty variation: %v", first)
	}
}

func TestDegradedModeWithoutDataset(t *testing.T) {
	store := dataset.Load(filepath.Join(t.TempDir(), "absent.json"), logger.NewNop())
	h := testRouter(t, store)

	for _, route := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/stats", ""},
		{http.MethodGet, "/api/categories", ""},
		{http.MethodPost, "/api/browse", "{}"},
		{http.MethodPost, "/api/random", "{}"},
		{http.MethodGet, "/api/loras", ""},
		{http.MethodGet, "/api/images/1", ""},
	} {
		rr, out := doJSON(t, h, route.method, route.path, route.body)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s %s: status=%d body=%s", route.method, route.path, rr.Code, rr.Body.String())
		}
		if out["available"] != false {
			t.Fatalf("%s %s: expected available=false: %v", route.method, route.path, out)
		}
		if out["hint"] == "" {
			t.Fatalf("%s %s: missing empty-state hint", route.method, route.path)
		}
	}
}

func TestIndexServed(t *testing.T) {
	h := testRouter(t, testStore(t))

	rr, _ := doJSON(t, h, http.MethodGet, "/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "PromptAtlas") {
		t.Fatalf("index page not served")
	}
}
