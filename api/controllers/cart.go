package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lmedina-dev/tastebite-backend/api/middleware"
	"github.com/lmedina-dev/tastebite-backend/api/responses"
	"github.com/lmedina-dev/tastebite-backend/api/validators"
	"github.com/lmedina-dev/tastebite-backend/internal/cart"
	pkgerrors "github.com/lmedina-dev/tastebite-backend/pkg/errors"
)

type addCartItemRequest struct {
	FoodID   string `json:"foodId" validate:"required,uuid"`
	Quantity int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartFetch returns the session's cart with recomputed totals.
func CartFetch(svc cart.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			writer.Error(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		view, err := svc.Get(r.Context(), sessionID)
		if err != nil {
			writer.Error(r.Context(), w, err)
			return
		}
		writer.JSON(w, http.StatusOK, view)
	}
}

// CartAddItem adds a food to the cart, merging quantity into an existing line
// item. Quantities below 1 are tolerated as no-ops.
func CartAddItem(svc cart.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			writer.Error(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			writer.Error(r.Context(), w, err)
			return
		}

		foodID, err := uuid.Parse(payload.FoodID)
		if err != nil {
			writer.Error(r.Context(), w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid food id"))
			return
		}

		view, err := svc.AddItem(r.Context(), sessionID, foodID, payload.Quantity)
		if err != nil {
			writer.Error(r.Context(), w, err)
			return
		}
		writer.JSON(w, http.StatusOK, view)
	}
}

// CartUpdateItem replaces a line item's quantity. Quantities below 1 and
// unknown ids leave the cart unchanged.
func CartUpdateItem(svc cart.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			writer.Error(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		foodID, err := uuid.Parse(chi.URLParam(r, "foodId"))
		if err != nil {
			// No line item can match an unparseable id; return the cart as-is.
			view, viewErr := svc.Get(r.Context(), sessionID)
			if viewErr != nil {
				writer.Error(r.Context(), w, viewErr)
				return
			}
			writer.JSON(w, http.StatusOK, view)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			writer.Error(r.Context(), w, err)
			return
		}

		view, err := svc.UpdateItem(r.Context(), sessionID, foodID, payload.Quantity)
		if err != nil {
			writer.Error(r.Context(), w, err)
			return
		}
		writer.JSON(w, http.StatusOK, view)
	}
}

// CartRemoveItem drops a line item; absent ids are no-ops.
func CartRemoveItem(svc cart.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			writer.Error(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		foodID, err := uuid.Parse(chi.URLParam(r, "foodId"))
		if err != nil {
			view, viewErr := svc.Get(r.Context(), sessionID)
			if viewErr != nil {
				writer.Error(r.Context(), w, viewErr)
				return
			}
			writer.JSON(w, http.StatusOK, view)
			return
		}

		view, err := svc.RemoveItem(r.Context(), sessionID, foodID)
		if err != nil {
			writer.Error(r.Context(), w, err)
			return
		}
		writer.JSON(w, http.StatusOK, view)
	}
}

// CartClear empties the session's cart unconditionally.
func CartClear(svc cart.Service, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			writer.Error(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		view, err := svc.Clear(r.Context(), sessionID)
		if err != nil {
			writer.Error(r.Context(), w, err)
			return
		}
		writer.JSON(w, http.StatusOK, view)
	}
}
