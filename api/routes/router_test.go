package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lmedina-dev/tastebite-backend/internal/cart"
	"github.com/lmedina-dev/tastebite-backend/internal/foods"
	"github.com/lmedina-dev/tastebite-backend/pkg/config"
	"github.com/lmedina-dev/tastebite-backend/pkg/logger"
	"github.com/lmedina-dev/tastebite-backend/pkg/metrics"
)

type healthyPinger struct{}

func (healthyPinger) Ping(context.Context) error { return nil }

type stubFoodService struct{}

func (stubFoodService) ListFoods(context.Context, foods.ListFoodsInput) ([]foods.FoodDTO, error) {
	return []foods.FoodDTO{}, nil
}

func (stubFoodService) GetFood(context.Context, uuid.UUID) (*foods.FoodDTO, error) {
	return &foods.FoodDTO{}, nil
}

func (stubFoodService) CreateFood(context.Context, foods.Payload) (*foods.FoodDTO, error) {
	return &foods.FoodDTO{}, nil
}

func (stubFoodService) UpdateFood(context.Context, uuid.UUID, foods.Payload) (*foods.FoodDTO, error) {
	return &foods.FoodDTO{}, nil
}

func (stubFoodService) DeleteFood(context.Context, uuid.UUID) error { return nil }

type memoryStore struct {
	snapshots map[string]cart.Snapshot
}

func (s *memoryStore) Load(_ context.Context, sessionID string) (*cart.Snapshot, error) {
	snap, ok := s.snapshots[sessionID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (s *memoryStore) Save(_ context.Context, sessionID string, snap cart.Snapshot) error {
	s.snapshots[sessionID] = snap
	return nil
}

func (s *memoryStore) Clear(_ context.Context, sessionID string) error {
	delete(s.snapshots, sessionID)
	return nil
}

type stubCatalog struct{}

func (stubCatalog) GetFood(_ context.Context, id uuid.UUID) (*foods.FoodDTO, error) {
	return &foods.FoodDTO{ID: id}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	cartService, err := cart.NewService(&memoryStore{snapshots: map[string]cart.Snapshot{}}, stubCatalog{})
	if err != nil {
		t.Fatalf("cart.NewService: %v", err)
	}

	registry := prometheus.NewRegistry()
	return NewRouter(
		cfg, logg,
		healthyPinger{}, healthyPinger{},
		registry, metrics.NewHTTPMetrics(registry),
		stubFoodService{}, cartService,
	)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-TasteBite-Env"); got != "test" {
		t.Fatalf("expected env header, got %q", got)
	}

	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("expected status ok, got %q", body.Status)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Fatalf("timestamp should be RFC3339, got %q: %v", body.Timestamp, err)
	}
}

func TestReadyEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Generate a request first so the collectors have something to report.
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/foods", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("expected prometheus exposition output")
	}
}

func TestRequestIDHeaderIssued(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("X-Request-Id"); got == "" {
		t.Fatalf("expected a request id header")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "req-123" {
		t.Fatalf("expected supplied request id to be echoed, got %q", got)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCartRoutesCarrySession(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Session-Id") == "" {
		t.Fatalf("expected session header on cart responses")
	}
}
