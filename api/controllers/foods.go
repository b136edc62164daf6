package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lmedina-dev/tastebite-backend/api/responses"
	"github.com/lmedina-dev/tastebite-backend/api/validators"
	"github.com/lmedina-dev/tastebite-backend/internal/foods"
	pkgerrors "github.com/lmedina-dev/tastebite-backend/pkg/errors"
)

// ListFoods serves the catalog listing with optional category/search filters.
// The response is a bare JSON array.
func ListFoods(svc foods.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := foods.ListFoodsInput{
			Category: validators.TrimmedQuery(r, "category"),
			Search:   validators.TrimmedQuery(r, "search"),
		}

		items, err := svc.ListFoods(r.Context(), input)
		if err != nil {
			writer.Error(r.Context(), w, err)
			return
		}
		writer.JSON(w, http.StatusOK, items)
	}
}

// GetFood serves a single catalog entry.
func GetFood(svc foods.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "foodId"))
		if err != nil {
			// Unparseable ids cannot reference a stored food.
			writer.Message(w, http.StatusNotFound, "Food not found")
			return
		}

		food, err := svc.GetFood(r.Context(), id)
		if err != nil {
			writer.Error(r.Context(), w, err)
			return
		}
		writer.JSON(w, http.StatusOK, food)
	}
}

// CreateFood validates and persists a new catalog entry.
func CreateFood(svc foods.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload foods.Payload
		if err := validators.DecodeLooseJSONBody(r, &payload); err != nil {
			writer.Error(r.Context(), w, err)
			return
		}

		food, err := svc.CreateFood(r.Context(), payload)
		if err != nil {
			writer.Error(r.Context(), w, err)
			return
		}
		writer.Success(w, http.StatusCreated, food)
	}
}

// UpdateFood applies a partial update to a catalog entry.
func UpdateFood(svc foods.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "foodId"))
		if err != nil {
			writer.Failure(w, http.StatusNotFound, "Food not found")
			return
		}

		var payload foods.Payload
		if err := validators.DecodeLooseJSONBody(r, &payload); err != nil {
			writer.Error(r.Context(), w, err)
			return
		}

		food, err := svc.UpdateFood(r.Context(), id, payload)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				writer.Failure(w, http.StatusNotFound, "Food not found")
				return
			}
			writer.Error(r.Context(), w, err)
			return
		}
		writer.Success(w, http.StatusOK, food)
	}
}

// DeleteFood removes a catalog entry. Absent ids still return 204; the
// operation is idempotent by contract.
func DeleteFood(svc foods.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "foodId"))
		if err != nil {
			// Nothing stored under an unparseable id; deleting it is a no-op.
			writer.NoContent(w)
			return
		}

		if err := svc.DeleteFood(r.Context(), id); err != nil {
			writer.Error(r.Context(), w, err)
			return
		}
		writer.NoContent(w)
	}
}
