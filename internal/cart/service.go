package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lmedina-dev/tastebite-backend/internal/foods"
	pkgerrors "github.com/lmedina-dev/tastebite-backend/pkg/errors"
)

// CartView is the cart representation returned to clients; totals are
// recomputed from the line items on every response.
type CartView struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice string     `json:"totalPrice"`
}

type foodLoader interface {
	GetFood(ctx context.Context, id uuid.UUID) (*foods.FoodDTO, error)
}

// Service exposes the session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
	AddItem(ctx context.Context, sessionID string, foodID uuid.UUID, quantity int) (*CartView, error)
	UpdateItem(ctx context.Context, sessionID string, foodID uuid.UUID, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, sessionID string, foodID uuid.UUID) (*CartView, error)
	Clear(ctx context.Context, sessionID string) (*CartView, error)
}

type service struct {
	store   SnapshotStore
	catalog foodLoader
}

// NewService builds a cart service backed by the snapshot store and catalog.
func NewService(store SnapshotStore, catalog foodLoader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("food loader required")
	}
	return &service{store: store, catalog: catalog}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*CartView, error) {
	engine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return newCartView(engine), nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, foodID uuid.UUID, quantity int) (*CartView, error) {
	food, err := s.catalog.GetFood(ctx, foodID)
	if err != nil {
		return nil, err
	}

	engine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	engine.Add(*food, quantity)
	return s.persist(ctx, sessionID, engine)
}

func (s *service) UpdateItem(ctx context.Context, sessionID string, foodID uuid.UUID, quantity int) (*CartView, error) {
	engine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	engine.UpdateQuantity(foodID, quantity)
	return s.persist(ctx, sessionID, engine)
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, foodID uuid.UUID) (*CartView, error) {
	engine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	engine.Remove(foodID)
	return s.persist(ctx, sessionID, engine)
}

func (s *service) Clear(ctx context.Context, sessionID string) (*CartView, error) {
	engine := NewEngine()
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return newCartView(engine), nil
}

func (s *service) load(ctx context.Context, sessionID string) (*Engine, error) {
	snap, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	if snap == nil {
		return NewEngine(), nil
	}
	return RestoreEngine(*snap), nil
}

func (s *service) persist(ctx context.Context, sessionID string, engine *Engine) (*CartView, error) {
	if err := s.store.Save(ctx, sessionID, engine.Snapshot()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return newCartView(engine), nil
}

func newCartView(engine *Engine) *CartView {
	totals := engine.Totals()
	return &CartView{
		Items:      engine.Items(),
		TotalItems: totals.TotalItems,
		TotalPrice: totals.TotalPrice.StringFixed(2),
	}
}
