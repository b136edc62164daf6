package foods

import (
	"time"

	"github.com/google/uuid"
	"github.com/lmedina-dev/tastebite-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// FoodDTO represents the catalog entry payload returned to clients. Field
// names mirror the storefront's expectations.
type FoodDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
	PrepTime    *int            `json:"prepTime,omitempty"`
	IsVeg       bool            `json:"isVeg"`
	IsSpicy     bool            `json:"isSpicy"`
	IsPopular   bool            `json:"isPopular"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewFoodDTO builds a DTO from the persisted model.
func NewFoodDTO(food *models.Food) *FoodDTO {
	return &FoodDTO{
		ID:          food.ID,
		Name:        food.Name,
		Description: food.Description,
		Price:       food.Price,
		ImageURL:    food.ImageURL,
		Category:    food.Category,
		Rating:      food.Rating,
		PrepTime:    food.PrepTimeMinutes,
		IsVeg:       food.IsVeg,
		IsSpicy:     food.IsSpicy,
		IsPopular:   food.IsPopular,
		CreatedAt:   food.CreatedAt,
		UpdatedAt:   food.UpdatedAt,
	}
}

// NewFoodDTOs maps a slice of models preserving order.
func NewFoodDTOs(foods []models.Food) []FoodDTO {
	out := make([]FoodDTO, len(foods))
	for i := range foods {
		out[i] = *NewFoodDTO(&foods[i])
	}
	return out
}
