package foods

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/lmedina-dev/tastebite-backend/pkg/db"
	"github.com/lmedina-dev/tastebite-backend/pkg/db/models"
	pkgerrors "github.com/lmedina-dev/tastebite-backend/pkg/errors"
	"github.com/lmedina-dev/tastebite-backend/pkg/logger"
	"gorm.io/gorm"
)

// Service exposes catalog operations over the food collection.
type Service interface {
	ListFoods(ctx context.Context, input ListFoodsInput) ([]FoodDTO, error)
	GetFood(ctx context.Context, id uuid.UUID) (*FoodDTO, error)
	CreateFood(ctx context.Context, payload Payload) (*FoodDTO, error)
	UpdateFood(ctx context.Context, id uuid.UUID, payload Payload) (*FoodDTO, error)
	DeleteFood(ctx context.Context, id uuid.UUID) error
}

// ListFoodsInput carries the optional listing filters. Both values are
// expected pre-trimmed by the transport layer.
type ListFoodsInput struct {
	Category string
	Search   string
}

type service struct {
	repo FoodRepository
	logg *logger.Logger

	// Last successful full listing, served through the pure filter when the
	// store is unreachable. Mirrors the storefront's client-side fallback.
	mu        sync.RWMutex
	cached    []FoodDTO
	cacheWarm bool
}

// NewService constructs the catalog service.
func NewService(repo FoodRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("food repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) ListFoods(ctx context.Context, input ListFoodsInput) ([]FoodDTO, error) {
	rows, err := s.repo.List(ctx, input.Category, input.Search)
	if err != nil {
		if fallback, ok := s.fallbackListing(input); ok {
			if s.logg != nil {
				s.logg.Warn(ctx, "food store unreachable, serving cached listing")
			}
			return fallback, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing foods")
	}

	result := NewFoodDTOs(rows)
	if input.Category == "" && input.Search == "" {
		s.storeListing(result)
	}
	return result, nil
}

func (s *service) fallbackListing(input ListFoodsInput) ([]FoodDTO, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.cacheWarm {
		return nil, false
	}
	category := input.Category
	if category == "" {
		category = CategoryAll
	}
	return Visible(s.cached, input.Search, category), true
}

func (s *service) storeListing(items []FoodDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = append([]FoodDTO(nil), items...)
	s.cacheWarm = true
}

func (s *service) dropListing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.cacheWarm = false
}

func (s *service) GetFood(ctx context.Context, id uuid.UUID) (*FoodDTO, error) {
	food, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Food not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching food")
	}
	return NewFoodDTO(food), nil
}

func (s *service) CreateFood(ctx context.Context, payload Payload) (*FoodDTO, error) {
	if errs := RunRules(CreateRules(), payload); len(errs) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(errs)
	}

	price, _ := parseDecimal(payload.Price)
	food := &models.Food{
		Name:        strings.TrimSpace(*payload.Name),
		Description: strings.TrimSpace(*payload.Description),
		Price:       price,
		ImageURL:    strings.TrimSpace(*payload.ImageURL),
		Category:    strings.TrimSpace(*payload.Category),
	}
	if payload.Rating != nil {
		rating, _ := parseFloat(payload.Rating)
		food.Rating = rating
	}
	if payload.PrepTime != nil {
		minutes, _ := parseFloat(payload.PrepTime)
		m := int(minutes)
		food.PrepTimeMinutes = &m
	}
	if payload.IsVeg != nil {
		food.IsVeg = *payload.IsVeg
	}
	if payload.IsSpicy != nil {
		food.IsSpicy = *payload.IsSpicy
	}
	if payload.IsPopular != nil {
		food.IsPopular = *payload.IsPopular
	}

	created, err := s.repo.Create(ctx, food)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "food already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating food")
	}
	s.dropListing()
	return NewFoodDTO(created), nil
}

func (s *service) UpdateFood(ctx context.Context, id uuid.UUID, payload Payload) (*FoodDTO, error) {
	if errs := RunRules(UpdateRules(), payload); len(errs) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(errs)
	}

	food, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Food not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading food for update")
	}

	applyPayload(food, payload)

	updated, err := s.repo.Update(ctx, food)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating food")
	}
	s.dropListing()
	return NewFoodDTO(updated), nil
}

// DeleteFood removes the food when present. Absent ids are no-ops; the
// operation is idempotent by contract.
func (s *service) DeleteFood(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting food")
	}
	s.dropListing()
	return nil
}

// applyPayload copies the supplied fields onto the model. The id is never
// touched.
func applyPayload(food *models.Food, payload Payload) {
	if payload.Name != nil {
		food.Name = strings.TrimSpace(*payload.Name)
	}
	if payload.Description != nil {
		food.Description = strings.TrimSpace(*payload.Description)
	}
	if payload.Price != nil {
		if price, ok := parseDecimal(payload.Price); ok {
			food.Price = price
		}
	}
	if payload.ImageURL != nil {
		food.ImageURL = strings.TrimSpace(*payload.ImageURL)
	}
	if payload.Category != nil {
		food.Category = strings.TrimSpace(*payload.Category)
	}
	if payload.Rating != nil {
		if rating, ok := parseFloat(payload.Rating); ok {
			food.Rating = rating
		}
	}
	if payload.PrepTime != nil {
		if minutes, ok := parseFloat(payload.PrepTime); ok {
			m := int(minutes)
			food.PrepTimeMinutes = &m
		}
	}
	if payload.IsVeg != nil {
		food.IsVeg = *payload.IsVeg
	}
	if payload.IsSpicy != nil {
		food.IsSpicy = *payload.IsSpicy
	}
	if payload.IsPopular != nil {
		food.IsPopular = *payload.IsPopular
	}
}
