package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmedina-dev/tastebite-backend/api/responses"
	"github.com/lmedina-dev/tastebite-backend/internal/foods"
	pkgerrors "github.com/lmedina-dev/tastebite-backend/pkg/errors"
)

type stubFoodService struct {
	foods []foods.FoodDTO
}

func (s *stubFoodService) ListFoods(_ context.Context, input foods.ListFoodsInput) ([]foods.FoodDTO, error) {
	category := input.Category
	if category == "" {
		category = foods.CategoryAll
	}
	return foods.Visible(s.foods, input.Search, category), nil
}

func (s *stubFoodService) GetFood(_ context.Context, id uuid.UUID) (*foods.FoodDTO, error) {
	for i := range s.foods {
		if s.foods[i].ID == id {
			return &s.foods[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Food not found")
}

func (s *stubFoodService) CreateFood(_ context.Context, payload foods.Payload) (*foods.FoodDTO, error) {
	if errs := foods.RunRules(foods.CreateRules(), payload); len(errs) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(errs)
	}
	dto := foods.FoodDTO{ID: uuid.New(), Name: strings.TrimSpace(*payload.Name)}
	s.foods = append(s.foods, dto)
	return &dto, nil
}

func (s *stubFoodService) UpdateFood(_ context.Context, id uuid.UUID, payload foods.Payload) (*foods.FoodDTO, error) {
	if errs := foods.RunRules(foods.UpdateRules(), payload); len(errs) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(errs)
	}
	for i := range s.foods {
		if s.foods[i].ID == id {
			return &s.foods[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Food not found")
}

func (s *stubFoodService) DeleteFood(_ context.Context, id uuid.UUID) error {
	for i := range s.foods {
		if s.foods[i].ID == id {
			s.foods = append(s.foods[:i], s.foods[i+1:]...)
			return nil
		}
	}
	return nil
}

func newFoodsRouter(svc foods.Service) http.Handler {
	writer := responses.NewWriter(nil, false)
	r := chi.NewRouter()
	r.Get("/foods", ListFoods(svc, writer))
	r.Post("/foods", CreateFood(svc, writer))
	r.Get("/foods/{foodId}", GetFood(svc, writer))
	r.Put("/foods/{foodId}", UpdateFood(svc, writer))
	r.Delete("/foods/{foodId}", DeleteFood(svc, writer))
	return r
}

func catalogDTO(name, category string) foods.FoodDTO {
	return foods.FoodDTO{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString("12.99"),
	}
}

func TestListFoodsReturnsBareArray(t *testing.T) {
	t.Parallel()

	svc := &stubFoodService{foods: []foods.FoodDTO{
		catalogDTO("Margherita Pizza", "pizza"),
		catalogDTO("Chicken Burger", "burger"),
	}}
	router := newFoodsRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/foods", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := strings.TrimSpace(rec.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Fatalf("listing must be a bare array, got %s", body)
	}

	var items []foods.FoodDTO
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestListFoodsTrimsQueryParams(t *testing.T) {
	t.Parallel()

	svc := &stubFoodService{foods: []foods.FoodDTO{catalogDTO("Margherita Pizza", "pizza")}}
	router := newFoodsRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/foods?search=%20pizza%20", nil))

	var items []foods.FoodDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the padded query to be trimmed and match, got %d items", len(items))
	}
}

func TestGetFoodNotFoundShape(t *testing.T) {
	t.Parallel()

	router := newFoodsRouter(&stubFoodService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/foods/"+uuid.NewString(), nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["message"] != "Food not found" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["success"]; ok {
		t.Fatalf("single-food 404 must not carry a success flag: %v", body)
	}
}

func TestGetFoodUnparseableID(t *testing.T) {
	t.Parallel()

	router := newFoodsRouter(&stubFoodService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/foods/9999", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-uuid id, got %d", rec.Code)
	}
}

func TestCreateFoodSuccessEnvelope(t *testing.T) {
	t.Parallel()

	router := newFoodsRouter(&stubFoodService{})

	payload := `{
		"name": "California Roll",
		"description": "Crab, avocado, and cucumber roll with sesame seeds",
		"price": 8.99,
		"imageUrl": "https://example.com/roll.jpg",
		"category": "sushi"
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/foods", strings.NewReader(payload)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !body.Success || len(body.Data) == 0 {
		t.Fatalf("expected success envelope with data, got %s", rec.Body.String())
	}
}

func TestCreateFoodAccumulatesFieldErrors(t *testing.T) {
	t.Parallel()

	router := newFoodsRouter(&stubFoodService{})

	payload := `{
		"description": "Crab, avocado, and cucumber roll with sesame seeds",
		"price": "not a number",
		"imageUrl": "https://example.com/roll.jpg",
		"category": "sushi"
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/foods", strings.NewReader(payload)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Errors  []struct {
			Param    string `json:"param"`
			Msg      string `json:"msg"`
			Location string `json:"location"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Success {
		t.Fatalf("validation failure must report success=false")
	}

	params := map[string]bool{}
	for _, e := range body.Errors {
		params[e.Param] = true
		if e.Location != "body" {
			t.Fatalf("field error location should be body, got %q", e.Location)
		}
	}
	if !params["name"] || !params["price"] {
		t.Fatalf("expected errors for both name and price, got %s", rec.Body.String())
	}
}

func TestUpdateFoodNotFoundShape(t *testing.T) {
	t.Parallel()

	router := newFoodsRouter(&stubFoodService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/foods/"+uuid.NewString(), strings.NewReader(`{"price": 9.99}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if success, ok := body["success"].(bool); !ok || success {
		t.Fatalf("update 404 must carry success=false, got %v", body)
	}
	if body["message"] != "Food not found" {
		t.Fatalf("unexpected message: %v", body)
	}
}

func TestDeleteFoodAlwaysNoContent(t *testing.T) {
	t.Parallel()

	existing := catalogDTO("Margherita Pizza", "pizza")
	svc := &stubFoodService{foods: []foods.FoodDTO{existing}}
	router := newFoodsRouter(svc)

	for _, path := range []string{
		"/foods/" + existing.ID.String(),
		"/foods/" + uuid.NewString(),
		"/foods/9999",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("DELETE %s: expected 204, got %d", path, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("DELETE %s: expected empty body, got %s", path, rec.Body.String())
		}
	}
}
